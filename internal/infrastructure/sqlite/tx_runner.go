package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/amazone-warehouse/internal/application/inventory"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción SQLite.
type TxRunner struct {
	db *sql.DB
}

// NewTxRunner construye el runner con la base abierta.
func NewTxRunner(db *sql.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn inventory.TxFunc) error {
	return r.run(ctx, nil, fn)
}

// View igual que Run pero de solo lectura; fn ve una instantánea consistente.
func (r *TxRunner) View(ctx context.Context, fn inventory.TxFunc) error {
	return r.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (r *TxRunner) run(ctx context.Context, opts *sql.TxOptions, fn inventory.TxFunc) error {
	tx, err := r.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(NewProductRepository(tx), NewMovementRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
