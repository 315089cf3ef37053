package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type postgresKV struct {
	db *sqlx.DB
}

// NewPostgresKV stores each collection as a single JSON document in an
// app_state table, keyed by collection name.
func NewPostgresKV(db *sqlx.DB) (KV, error) {
	schema := `
		CREATE TABLE IF NOT EXISTS app_state (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return &postgresKV{db: db}, nil
}

func (r *postgresKV) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	query := `SELECT value FROM app_state WHERE key = $1`

	err := r.db.GetContext(ctx, &value, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (r *postgresKV) Save(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO app_state (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	_, err := r.db.ExecContext(ctx, query, key, value)
	return err
}
