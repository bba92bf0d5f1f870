package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier abstracción sobre *pgxpool.Pool y pgx.Tx para que los repos funcionen dentro o fuera de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id              UUID PRIMARY KEY,
	name            TEXT NOT NULL,
	sku             TEXT NOT NULL,
	zone            TEXT NOT NULL,
	warehouse       TEXT NOT NULL,
	arrival_date    TIMESTAMPTZ NOT NULL,
	expiration_date TIMESTAMPTZ,
	created_at      TIMESTAMPTZ NOT NULL,
	updated_at      TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_products_warehouse ON products (warehouse, zone);

CREATE TABLE IF NOT EXISTS movements (
	id         UUID PRIMARY KEY,
	product_id UUID NOT NULL REFERENCES products (id),
	seq        INTEGER NOT NULL,
	date       TIMESTAMPTZ NOT NULL,
	from_zone  TEXT,
	to_zone    TEXT NOT NULL,
	warehouse  TEXT NOT NULL,
	UNIQUE (product_id, seq)
);
CREATE INDEX IF NOT EXISTS idx_movements_product ON movements (product_id);
CREATE INDEX IF NOT EXISTS idx_movements_date ON movements (date);

CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// Migrate crea las tablas si no existen. Es idempotente.
func Migrate(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrar esquema: %w", err)
	}
	return nil
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == "23505"
}

// isForeignKeyViolation verifica si un error es una violación de FK (23503).
func isForeignKeyViolation(err error) bool {
	return pgCode(err) == "23503"
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
