package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/apetitox-inventario/internal/application/inventory"
	"github.com/jhoicas/apetitox-inventario/internal/domain"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL (READ COMMITTED).
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Los bloqueos FOR UPDATE se liberan al terminar. Deadlocks y fallos de serialización
// se marcan con domain.ErrRetryable, sin reintentar.
func (r *TxRunner) Run(ctx context.Context, fn func(repos inventory.TxRepos) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(reposFor(tx)); err != nil {
		return markRetryable(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return markRetryable(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

func reposFor(q Querier) inventory.TxRepos {
	return inventory.TxRepos{
		Materials: NewMaterialRepository(q),
		Products:  NewProductRepository(q),
		BOM:       NewBOMRepository(q),
		Movements: NewInventoryMovementRepository(q),
		Batches:   NewProductionBatchRepository(q),
	}
}

func markRetryable(err error) error {
	if IsRetryable(err) {
		return fmt.Errorf("%w: %w", domain.ErrRetryable, err)
	}
	return err
}
