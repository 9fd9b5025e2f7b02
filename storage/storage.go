package storage

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
)

// Store is the object storage used for petition images and group logos.
// Upload returns the public URL of the stored object.
type Store interface {
	Upload(ctx context.Context, objectName string, contentType string, reader io.Reader, size int64) (string, error)
	Delete(ctx context.Context, objectName string) error
}

// MemoryStore keeps objects in memory. Used by tests and local development
// without a running MinIO.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

func (s *MemoryStore) Upload(ctx context.Context, objectName string, contentType string, reader io.Reader, size int64) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[objectName] = data
	return fmt.Sprintf("mem://%s", objectName), nil
}

func (s *MemoryStore) Delete(ctx context.Context, objectName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, objectName)
	return nil
}

func (s *MemoryStore) Object(objectName string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[objectName]
	return data, ok
}

func (s *MemoryStore) ObjectNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.objects))
	for name := range s.objects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
