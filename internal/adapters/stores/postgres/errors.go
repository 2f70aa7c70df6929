package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jsamuelsen11/blog-posts-api/internal/domain"
)

// PostgreSQL error codes.
const (
	uniqueViolationCode  = "23505"
	notNullViolationCode = "23502"
	checkViolationCode   = "23514"
	stringTooLongCode    = "22001"
)

// mapError translates pgx errors into domain errors. The original error stays
// in the chain for logging.
func mapError(id string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w: %s: %w", domain.ErrConflict, pgErr.ConstraintName, err)
		case notNullViolationCode:
			return columnError(pgErr.ColumnName, domain.MsgRequired, err)
		case checkViolationCode:
			return columnError(pgErr.ColumnName, "violates constraint "+pgErr.ConstraintName, err)
		case stringTooLongCode:
			return columnError(pgErr.ColumnName, "is too long", err)
		}
		return err
	}

	if pgconn.Timeout(err) || errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}

	return err
}

func columnError(column, msg string, cause error) error {
	if column == "" {
		column = "body"
	}
	return errors.Join(domain.NewValidationError(column, msg), cause)
}
