// Package memory provides a mutex-guarded in-memory Store, used for local
// development and tests where no external store is available.
package memory

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/TechForum/forum-service/internal/repository"
)

type kvRepo struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewKV() repository.Store {
	return &kvRepo{
		data: make(map[string][]byte),
	}
}

func (r *kvRepo) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, exists := r.data[key]
	if !exists {
		return nil, repository.ErrNotFound
	}

	return value, nil
}

func (r *kvRepo) Set(ctx context.Context, key string, value interface{}) error {
	valueJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[key] = valueJSON

	return nil
}

func (r *kvRepo) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, key)

	return nil
}

func (r *kvRepo) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var values [][]byte
	for key, value := range r.data {
		if strings.HasPrefix(key, prefix) {
			values = append(values, value)
		}
	}

	return values, nil
}

func (r *kvRepo) Update(ctx context.Context, key string, fn func(raw []byte) (interface{}, error)) error {
	raw, err := r.Get(ctx, key)
	if err != nil {
		return err
	}

	value, err := fn(raw)
	if err != nil {
		return err
	}

	return r.Set(ctx, key, value)
}
