package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/fruver-api/internal/domain"
)

func TestContainsPattern_EscapaComodines(t *testing.T) {
	tests := []struct {
		term string
		want string
	}{
		{"", "%%"},
		{"man", "%man%"},
		{"50%", `%50\%%`},
		{"L_1", `%L\_1%`},
		{`a\b`, `%a\\b%`},
	}
	for _, tc := range tests {
		t.Run(tc.term, func(t *testing.T) {
			assert.Equal(t, tc.want, containsPattern(tc.term))
		})
	}
}

func TestStoreError_ConservaCausaYCategoria(t *testing.T) {
	cause := &pgconn.PgError{Code: codeForeignKeyViolation, Message: "fk"}
	err := storeError("insert lote", cause)

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "insert lote [foreign_key_violation]")
	assert.Equal(t, "foreign_key_violation", ConstraintKind(err))
}

func TestConstraintKind(t *testing.T) {
	assert.Equal(t, "", ConstraintKind(errors.New("conexión rechazada")))
	assert.Equal(t, "list lotes: almacén de datos no disponible: conexión rechazada",
		storeError("list lotes", errors.New("conexión rechazada")).Error())
	assert.Equal(t, "invalid_datetime", ConstraintKind(fmt.Errorf("x: %w", &pgconn.PgError{Code: codeInvalidDatetime})))
	assert.Equal(t, "unique_violation", ConstraintKind(&pgconn.PgError{Code: codeUniqueViolation}))
	assert.Equal(t, "other", ConstraintKind(&pgconn.PgError{Code: "42601"}))
}
