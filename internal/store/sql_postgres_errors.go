package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the event batcher whether a failed insert is
// worth another attempt.
type ErrorClassification int

const (
	// NonRetryable is the zero value: unknown errors are dropped.
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier classifies pgx errors by SQLSTATE class.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError and defers to
// [ClassifyPgError]. Errors that never reached the server are retryable when
// pgconn reports them safe to retry.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}
	if pgconn.SafeToRetry(err) {
		return Retryable
	}
	return NonRetryable
}

// ClassifyPgError maps a SQLSTATE to a classification. Lost connections
// (class 08), rolled back transactions (class 40), exhausted resources
// (class 53) and a server that is starting or shutting down are retryable.
// Everything else, notably data errors and constraint violations, would fail
// the same way again.
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code

	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		pgerrcode.IsInsufficientResources(code):
		return Retryable
	case pgerrcode.IsOperatorIntervention(code):
		if code == pgerrcode.QueryCanceled {
			return NonRetryable
		}
		return Retryable
	default:
		return NonRetryable
	}
}
