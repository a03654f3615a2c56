package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/TechForum/forum-service/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `CREATE TABLE IF NOT EXISTS forum_kv (
	key TEXT PRIMARY KEY,
	value JSONB NOT NULL
)`

// kvRepo stores every record as a row in a single key/value table, the same
// shape the managed table behind the original deployment has.
type kvRepo struct {
	db *pgxpool.Pool
}

func NewKV(ctx context.Context, db *pgxpool.Pool) (repository.Store, error) {
	if _, err := db.Exec(ctx, schema); err != nil {
		return nil, err
	}

	return &kvRepo{
		db: db,
	}, nil
}

func (r *kvRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRow(ctx, "SELECT value FROM forum_kv WHERE key = $1", key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
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

	_, err = r.db.Exec(
		ctx,
		"INSERT INTO forum_kv(key, value) VALUES($1, $2) ON CONFLICT(key) DO UPDATE SET value = EXCLUDED.value",
		key,
		valueJSON,
	)
	return err
}

func (r *kvRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM forum_kv WHERE key = $1", key)
	return err
}

func (r *kvRepo) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	rows, err := r.db.Query(ctx, "SELECT value FROM forum_kv WHERE key LIKE $1 || '%'", prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values [][]byte
	for rows.Next() {
		var value []byte
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	if err := rows.Err(); err != nil {
		return nil, err
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
