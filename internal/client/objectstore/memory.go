package objectstore

import (
	"context"
	"sync"
)

// Object is a stored blob as seen by the memory backend.
type Object struct {
	Data        []byte
	ContentType string
}

// Memory keeps objects in process. Used for demos and tests.
type Memory struct {
	mu      sync.Mutex
	base    string
	objects map[string]Object
	uploads int
}

func NewMemory(publicBaseURL string) *Memory {
	if publicBaseURL == "" {
		publicBaseURL = "memory://objects"
	}
	return &Memory{base: publicBaseURL, objects: make(map[string]Object)}
}

func (m *Memory) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = Object{Data: append([]byte(nil), data...), ContentType: contentType}
	m.uploads++
	return joinURL(m.base, key), nil
}

func (m *Memory) Get(key string) (Object, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.objects[key]
	return o, ok
}

// Uploads returns the number of successful Upload calls.
func (m *Memory) Uploads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.uploads
}
