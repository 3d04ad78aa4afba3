package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/fruver-api/internal/domain"
)

// Códigos SQLSTATE que se distinguen en los logs.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
	codeInvalidDatetime     = "22007"
)

// storeError envuelve un error del driver como domain.ErrStoreUnavailable conservando la causa.
// Si el almacén rechazó la operación por una restricción, el tipo queda en el mensaje.
func storeError(op string, err error) error {
	if kind := ConstraintKind(err); kind != "" {
		op += " [" + kind + "]"
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}

// SQLState devuelve el código SQLSTATE de un error de PostgreSQL, o "" si no lo es.
func SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// ConstraintKind describe el tipo de rechazo del almacén para los logs.
func ConstraintKind(err error) string {
	switch SQLState(err) {
	case codeUniqueViolation:
		return "unique_violation"
	case codeForeignKeyViolation:
		return "foreign_key_violation"
	case codeNotNullViolation:
		return "not_null_violation"
	case codeInvalidDatetime:
		return "invalid_datetime"
	case "":
		return ""
	default:
		return "other"
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern arma el patrón ILIKE que coincide con cualquier texto que contenga term literalmente.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
