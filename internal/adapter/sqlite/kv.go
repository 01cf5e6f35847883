// Package sqlite is the file-backed key-value backend used by default.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS journal_kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// KV stores journal keys in a single SQLite table.
type KV struct {
	db *sqlx.DB
}

// Open opens (creating if needed) the database file at path and ensures the
// table exists. Use ":memory:" for a throwaway database.
func Open(ctx context.Context, path string) (*KV, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("sqlite: create data dir: %w", err)
			}
		}
	}

	db, err := sqlx.ConnectContext(ctx, "sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: connect %s: %w", path, err)
	}

	// One writer at a time; this also keeps a ":memory:" database on a
	// single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: init schema: %w", err)
	}

	return &KV{db: db}, nil
}

func (k *KV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := k.db.GetContext(ctx, &value, `SELECT value FROM journal_kv WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("sqlite: get: %w", err)
	}
	return value, true, nil
}

func (k *KV) Set(ctx context.Context, key, value string) error {
	_, err := k.db.ExecContext(ctx, `
		INSERT INTO journal_kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		return fmt.Errorf("sqlite: set: %w", err)
	}
	return nil
}

func (k *KV) Remove(ctx context.Context, key string) error {
	if _, err := k.db.ExecContext(ctx, `DELETE FROM journal_kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("sqlite: remove: %w", err)
	}
	return nil
}

// Keys returns the keys starting with prefix in lexical order.
func (k *KV) Keys(ctx context.Context, prefix string) ([]string, error) {
	keys := []string{}
	err := k.db.SelectContext(ctx, &keys,
		`SELECT key FROM journal_kv WHERE substr(key, 1, ?) = ? ORDER BY key`,
		len(prefix), prefix)
	if err != nil {
		return nil, fmt.Errorf("sqlite: keys: %w", err)
	}
	return keys, nil
}

// Ping checks the database connection.
func (k *KV) Ping(ctx context.Context) error {
	return k.db.PingContext(ctx)
}

// Close closes the database.
func (k *KV) Close() error {
	return k.db.Close()
}
