package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Khosrovf/Khosro8/internal/application/ledger"
	"github.com/Khosrovf/Khosro8/internal/domain/repository"
)

// Ensure TxRunner implements ledger.TxRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Es la única
// vía para el par "insertar transacción + ajustar existencia": o se confirman
// ambos pasos o ninguno.
type TxRunner struct {
	pool           *pgxpool.Pool
	acquireTimeout time.Duration
}

// NewTxRunner construye el runner con el pool. acquireTimeout acota la espera
// por una conexión libre (0 = esperar indefinidamente).
func NewTxRunner(pool *pgxpool.Pool, acquireTimeout time.Duration) *TxRunner {
	return &TxRunner{pool: pool, acquireTimeout: acquireTimeout}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. El Rollback diferido cubre todos los caminos de salida,
// incluida la cancelación del contexto del caller.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	txRepo repository.TransactionRepository,
) error) error {
	beginCtx, cancel := acquireContext(ctx, r.acquireTimeout)
	defer cancel()

	tx, err := r.pool.Begin(beginCtx)
	if err != nil {
		if mapped := mapAcquireError(err, ctx, beginCtx); mapped != err {
			return mapped
		}
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	itemRepo := NewItemRepository(tx)
	txRepo := NewTransactionRepository(tx)

	if err := fn(itemRepo, txRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
