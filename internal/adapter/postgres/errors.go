package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/lexicon-journal/internal/domain"
)

// MapError converts pgx errors into domain errors, prefixed with the
// operation and key. Context errors pass through unchanged in kind.
func MapError(err error, op, key string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", op, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", op, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23514", "22001": // check_violation, string_data_right_truncation
			return fmt.Errorf("%s %s: %w", op, key, domain.ErrValidation)
		}
		return fmt.Errorf("%s %s: pg %s: %w", op, key, pgErr.Code, err)
	}

	return fmt.Errorf("%s %s: %w", op, key, err)
}
