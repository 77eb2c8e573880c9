package blobstore

import (
	"bytes"
	"context"
	"io"
	"sync"
)

type memoryObject struct {
	data        []byte
	contentType string
}

// MemoryStore keeps blobs in a map. Test double for the S3 store.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]memoryObject
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]memoryObject)}
}

func (m *MemoryStore) Put(_ context.Context, name string, contentType string, body io.Reader, _ int64) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.objects[name] = memoryObject{data: data, contentType: contentType}
	m.mu.Unlock()

	return nil
}

func (m *MemoryStore) Get(_ context.Context, name string) (io.ReadCloser, string, int64, error) {
	m.mu.RLock()
	obj, ok := m.objects[name]
	m.mu.RUnlock()

	if !ok {
		return nil, "", 0, ErrNotFound
	}

	return io.NopCloser(bytes.NewReader(obj.data)), obj.contentType, int64(len(obj.data)), nil
}
