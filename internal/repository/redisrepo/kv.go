package redisrepo

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/TechForum/forum-service/internal/repository"
	"github.com/redis/go-redis/v9"
)

type kvRepo struct {
	rdb *redis.Client
}

func NewKV(rdb *redis.Client) repository.Store {
	return &kvRepo{
		rdb: rdb,
	}
}

func (r *kvRepo) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return value, nil
}

func (r *kvRepo) Set(ctx context.Context, key string, value interface{}) error {
	valueJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}

	// Records never expire; the store is the source of truth, not a cache.
	return r.rdb.Set(ctx, key, valueJSON, 0).Err()
}

func (r *kvRepo) Delete(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, key).Err()
}

func (r *kvRepo) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	var keys []string
	iter := r.rdb.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return nil, nil
	}

	raws, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	var values [][]byte
	for _, raw := range raws {
		// A key deleted between SCAN and MGET comes back nil; skip it.
		s, ok := raw.(string)
		if !ok {
			continue
		}
		values = append(values, []byte(s))
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
