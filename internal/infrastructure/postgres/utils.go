package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de unique_violation.
const codeUniqueViolation = "23505"

// isUniqueViolation detecta choques de constraint único (SKU de producto,
// nombre de centro de trabajo, número de orden) para traducirlos a
// domain.ErrDuplicate en los repositorios.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
