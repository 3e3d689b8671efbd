package connectivity

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// FileSignal follows a status file holding "online" or "offline". The parent
// directory is watched so the file may be created or replaced atomically.
// A missing file reads as offline.
type FileSignal struct {
	Path string
}

func (f FileSignal) Watch(ctx context.Context) (<-chan bool, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(f.Path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch directory: %w", err)
	}

	out := make(chan bool, 1)
	out <- f.read()

	go func() {
		defer watcher.Close()
		defer close(out)

		name := filepath.Clean(f.Path)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != name {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				select {
				case out <- f.read():
				case <-ctx.Done():
					return
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return out, nil
}

func (f FileSignal) read() bool {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return false
	}
	return ParseStatus(string(b))
}

// ParseStatus accepts online/offline as well as the usual boolean spellings.
func ParseStatus(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "online", "up", "1", "true", "yes":
		return true
	default:
		return false
	}
}
