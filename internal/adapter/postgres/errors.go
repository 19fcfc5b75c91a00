package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fundrik/backend/internal/domain"
)

// MapError converts pgx/pgconn errors into the repository error contract.
// Every failure wraps domain.ErrRepository; recognizable causes additionally
// wrap a detail sentinel so transports can choose a status code.
func MapError(err error, entity, id string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w: %w", entity, id, domain.ErrRepository, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w: %w", entity, id, domain.ErrRepository, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w: %w", entity, id, domain.ErrRepository, domain.ErrNotFound)
		}
	}

	return fmt.Errorf("%s %s: %w: %w", entity, id, domain.ErrRepository, err)
}
