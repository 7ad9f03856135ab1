package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Khosrovf/Khosro8/pkg/logger"
)

// migration paso de esquema con nombre. Cada sentencia es idempotente por
// construcción (CREATE ... IF NOT EXISTS); no se lleva registro de pasos
// aplicados, re-ejecutar la lista completa es seguro.
type migration struct {
	name string
	sql  string
}

// migrations lista ordenada de pasos de esquema. Agregar pasos solo al final
// y solo con sentencias idempotentes: la lista completa corre en cada arranque.
var migrations = []migration{
	{
		name: "create_items",
		sql: `
CREATE TABLE IF NOT EXISTS items (
    id         BIGSERIAL PRIMARY KEY,
    name       TEXT NOT NULL,
    category   TEXT NOT NULL DEFAULT '',
    unit       TEXT NOT NULL DEFAULT '',
    quantity   NUMERIC(18,4) NOT NULL DEFAULT 0,
    price      NUMERIC(18,4) NOT NULL DEFAULT 0,
    supplier   TEXT NOT NULL DEFAULT '',
    notes      TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`,
	},
	{
		name: "create_transactions",
		sql: `
CREATE TABLE IF NOT EXISTS transactions (
    id         BIGSERIAL PRIMARY KEY,
    item_id    BIGINT NOT NULL REFERENCES items(id),
    type       TEXT NOT NULL,
    status     TEXT NOT NULL DEFAULT 'approved',
    number     TEXT NOT NULL DEFAULT '',
    date       TIMESTAMPTZ NOT NULL,
    quantity   NUMERIC(18,4) NOT NULL CHECK (quantity > 0),
    notes      TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_transactions_item ON transactions (item_id);
CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions (date DESC);`,
	},
	{
		name: "create_users",
		sql: `
CREATE TABLE IF NOT EXISTS users (
    id            BIGSERIAL PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    name          TEXT NOT NULL DEFAULT '',
    role          TEXT NOT NULL DEFAULT 'operador',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`,
	},
}

// ApplyMigrations ejecuta todos los pasos de esquema en orden dentro de UNA
// transacción y hace commit al final: si un paso falla no queda nada aplicado
// parcialmente. El error es fatal para la construcción del store (sin esquema
// no se puede operar).
func ApplyMigrations(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin migrations: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, m := range migrations {
		if _, err := tx.Exec(ctx, m.sql); err != nil {
			return fmt.Errorf("migration %s: %w", m.name, err)
		}
		if log != nil {
			log.Debug().Str("migration", m.name).Msg("paso de esquema aplicado")
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit migrations: %w", err)
	}
	return nil
}
