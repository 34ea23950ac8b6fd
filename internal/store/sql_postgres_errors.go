package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassifier maps driver-level errors to the package's sentinel
// errors so the service layer never has to inspect PostgreSQL error codes.
type ErrorClassifier interface {
	// Classify translates err into a sentinel error where possible and
	// returns err unchanged otherwise. A nil err is returned as nil.
	Classify(err error) error
}

// PostgresErrorClassifier implements [ErrorClassifier] for PostgreSQL by
// inspecting the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassifier]. A unique constraint violation on
// the notes table becomes [ErrNoteAlreadyExists]; everything else passes
// through untouched.
func (c *PostgresErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrNoteAlreadyExists
	}

	return err
}
