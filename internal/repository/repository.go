package repository

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned by Store.Get and Store.Update when no value is
// stored under the key. Backends translate their driver sentinels
// (pgx.ErrNoRows, redis.Nil) into it so services stay driver-agnostic.
var ErrNotFound = errors.New("key not found")

// Store is the key-value persistence contract. Values are opaque JSON.
//
// Update is the read-modify-write seam: the current implementations perform a
// plain get-then-set, so concurrent updates of the same key can lose writes.
// A backend with compare-and-swap can strengthen this without changing any
// call site.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
	Update(ctx context.Context, key string, fn func(raw []byte) (interface{}, error)) error
}

type Repository struct {
	KV Store
}

func New(store Store) *Repository {
	return &Repository{
		KV: store,
	}
}

func GetJSON[T any](ctx context.Context, s Store, key string) (*T, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var result T
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func DecodeMany[T any](raws [][]byte) ([]*T, error) {
	var results []*T
	for _, raw := range raws {
		var result T
		if err := json.Unmarshal(raw, &result); err != nil {
			return nil, err
		}
		results = append(results, &result)
	}

	return results, nil
}
