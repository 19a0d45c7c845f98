// Package memory provides a process-local key/value repository for tests and development.
package memory

import (
	"context"
	"sync"

	portsrepo "github.com/SscSPs/printshop_pos/internal/core/ports/repositories"
)

// KeyValueRepository keeps blobs in a map.
type KeyValueRepository struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewKeyValueRepository creates an empty repository.
func NewKeyValueRepository() *KeyValueRepository {
	return &KeyValueRepository{blobs: make(map[string][]byte)}
}

var _ portsrepo.KeyValueRepositoryFacade = (*KeyValueRepository)(nil)

// Load returns a copy of the blob stored under key.
func (r *KeyValueRepository) Load(_ context.Context, key string) ([]byte, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	blob, ok := r.blobs[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), blob...), true, nil
}

// Save stores a copy of blob under key.
func (r *KeyValueRepository) Save(_ context.Context, key string, blob []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blobs[key] = append([]byte(nil), blob...)
	return nil
}

// Delete removes key.
func (r *KeyValueRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.blobs, key)
	return nil
}
