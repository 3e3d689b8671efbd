// Package objectstore uploads promoted attachments to durable object storage.
//
// Several backends are available behind the Uploader interface; New picks one
// from configuration. Every backend returns the public URL under which the
// object can later be fetched; that URL is what ends up in committed reports.
package objectstore

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/fieldsync/internal/client/config"
)

// Uploader stores one object and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// Presigner issues presigned PUT URLs; the record server client implements it.
type Presigner interface {
	PresignUpload(ctx context.Context, key, contentType string) (uploadURL, publicURL string, err error)
}

// New builds the uploader selected by cfg.Backend. presigner is only used by
// the presigned backend and may be nil otherwise.
func New(ctx context.Context, cfg config.ObjectStore, presigner Presigner, httpClient *http.Client) (Uploader, error) {
	switch cfg.Backend {
	case config.BackendPresigned, "":
		if presigner == nil {
			return nil, fmt.Errorf("objectstore: presigned backend needs a presigner")
		}
		return NewPresigned(presigner, httpClient), nil
	case config.BackendS3:
		return NewS3(ctx, cfg)
	case config.BackendMinio:
		return NewMinio(cfg)
	case config.BackendGCS:
		return NewGCS(ctx, cfg)
	case config.BackendMemory:
		// Objects never leave the process, so the record server cannot
		// resolve a memory URL unless it is pointed at a real http base.
		if !strings.HasPrefix(cfg.PublicBaseURL, "http://") && !strings.HasPrefix(cfg.PublicBaseURL, "https://") {
			return nil, fmt.Errorf("objectstore: memory backend needs an http(s) public base url")
		}
		return NewMemory(cfg.PublicBaseURL), nil
	default:
		return nil, fmt.Errorf("objectstore: unknown backend %q", cfg.Backend)
	}
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}
