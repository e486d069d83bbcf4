package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"curateurs-backoffice/internal/domain"
)

const uniqueViolation = "23505"

// wrapErr attaches the store taxonomy to a driver error.
func wrapErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w: %s", op, domain.ErrConflict, pgErr.Detail)
	}
	return fmt.Errorf("%s: %w: %v", op, domain.ErrPersistence, err)
}
