package photo

import (
	"context"
	"sync"

	"snapquest/internal/model"
)

// MemoryStore is the default in-process photo store
type MemoryStore struct {
	mu     sync.RWMutex
	photos map[string]Photo
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory photo store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{photos: make(map[string]Photo)}
}

func (s *MemoryStore) Put(ctx context.Context, p Photo) (string, error) {
	if len(p.Data) > MaxPhotoBytes {
		return "", model.ErrPhotoTooLarge
	}
	ref := NewRef()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.photos[ref] = p
	return ref, nil
}

func (s *MemoryStore) Get(ctx context.Context, ref string) (Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.photos[ref]
	if !ok {
		return Photo{}, model.ErrPhotoNotFound
	}
	return p, nil
}

func (s *MemoryStore) Delete(ctx context.Context, ref string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.photos, ref)
	return nil
}
