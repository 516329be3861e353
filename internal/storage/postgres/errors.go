package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/cimillas/event-admin/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/puddle/v2"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

func pgError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}
	return nil
}

func isUniqueViolation(err error) bool {
	pgErr := pgError(err)
	return pgErr != nil && pgErr.Code == codeUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	pgErr := pgError(err)
	return pgErr != nil && pgErr.Code == codeForeignKeyViolation
}

func isCheckViolation(err error) bool {
	pgErr := pgError(err)
	return pgErr != nil && pgErr.Code == codeCheckViolation
}

// isConnectionError reports failures to reach the server, as opposed to
// errors the server returned.
func isConnectionError(err error) bool {
	if pgError(err) != nil {
		return false
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	if errors.Is(err, puddle.ErrClosedPool) || pgconn.Timeout(err) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// storageError tags an unexpected driver error so no raw transport error
// leaves this package untagged.
func storageError(op string, err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrCanceled, err)
	case isConnectionError(err):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrConnection, err)
	case isCheckViolation(err):
		return fmt.Errorf("%s: %w", op, domain.Invalid(pgError(err).ConstraintName, "violates check constraint"))
	default:
		return fmt.Errorf("%s: %w: %w", op, domain.ErrStorage, err)
	}
}

// passThrough keeps domain errors raised inside a transaction callback and
// tags everything else.
func passThrough(op string, err error) error {
	for _, known := range []error{
		domain.ErrProfileNotFound,
		domain.ErrEventNotFound,
		domain.ErrTicketNotFound,
		domain.ErrDuplicateEmail,
		domain.ErrInvalidInput,
		domain.ErrConnection,
		domain.ErrCanceled,
		domain.ErrStorage,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return storageError(op, err)
}
