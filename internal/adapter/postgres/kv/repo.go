// Package kv implements the journal key-value backend on PostgreSQL.
package kv

import (
	"context"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/lexicon-journal/internal/adapter/postgres"
)

const table = "journal_kv"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo stores journal keys in the journal_kv table.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a Repo.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := psql.Select("value").From(table).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return "", false, err
	}

	var value string
	err = r.pool.QueryRow(ctx, query, args...).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, postgres.MapError(err, "get", key)
	}
	return value, true, nil
}

func (r *Repo) Set(ctx context.Context, key, value string) error {
	query, args, err := psql.Insert(table).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("now()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "set", key)
	}
	return nil
}

func (r *Repo) Remove(ctx context.Context, key string) error {
	query, args, err := psql.Delete(table).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return err
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "remove", key)
	}
	return nil
}

// Keys returns the keys starting with prefix in lexical order.
func (r *Repo) Keys(ctx context.Context, prefix string) ([]string, error) {
	query, args, err := psql.Select("key").From(table).
		Where(sq.Like{"key": escapeLike(prefix) + "%"}).
		OrderBy("key").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "keys", prefix)
	}

	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, postgres.MapError(err, "keys", prefix)
	}
	return keys, nil
}

// Ping checks the pool.
func (r *Repo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
