package repository

import (
	"context"
	"sync"
)

// PreferenceRepository is device-local key/value storage.
type PreferenceRepository interface {
	// Get reports found=false when the key has never been written.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

type memoryRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryRepository() PreferenceRepository {
	return &memoryRepository{values: make(map[string]string)}
}

func (r *memoryRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.values[key]
	return value, ok, nil
}

func (r *memoryRepository) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}
