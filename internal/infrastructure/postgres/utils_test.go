package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505"}
	assert.True(t, isUniqueViolation(pgErr))
	// También envuelto con %w
	assert.True(t, isUniqueViolation(fmt.Errorf("insert user: %w", pgErr)))

	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("otro error")))
	assert.False(t, isUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503"}
	assert.True(t, isForeignKeyViolation(pgErr))
	assert.True(t, isForeignKeyViolation(fmt.Errorf("insert transaction: %w", pgErr)))

	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isForeignKeyViolation(nil))
}

// Las sentencias de esquema deben ser idempotentes por construcción: la lista
// completa corre en cada arranque sin registro de pasos aplicados.
func TestMigrations_Idempotentes(t *testing.T) {
	assert.NotEmpty(t, migrations)
	for _, m := range migrations {
		assert.NotEmpty(t, m.name)
		assert.Contains(t, m.sql, "IF NOT EXISTS", "migration %s debe ser re-ejecutable", m.name)
	}
}
