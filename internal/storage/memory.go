package storage

import (
	"bytes"
	"errors"
	"io"
	"sync"
)

var ErrNoBlob = errors.New("blob not found")

// MemStore keeps blobs in process memory. Used in tests and when the
// gateway runs without a data directory.
type MemStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{blobs: make(map[string][]byte)}
}

func (s *MemStore) Put(key string, r io.Reader) (string, error) {
	if key == "" {
		return "", errors.New("empty key")
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.blobs[key] = b
	s.mu.Unlock()
	return key, nil
}

func (s *MemStore) Get(key string) (io.ReadCloser, error) {
	s.mu.RLock()
	b, ok := s.blobs[key]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNoBlob
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (s *MemStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.blobs, key)
	s.mu.Unlock()
	return nil
}

func (s *MemStore) SignedURL(key string) (string, error) {
	return "mem://" + key, nil
}

// Len reports how many blobs are held. Test helper.
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}
