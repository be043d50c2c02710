package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/stocktrack-api/internal/application/engine"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// Ensure TxRunner implements engine.TxRunner.
var _ engine.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Cualquier error de fn (incluido un rechazo de negocio)
// revierte todas las sentencias de la operación.
func (r *TxRunner) Run(ctx context.Context, fn func(
	instRepo repository.InstanceRepository,
	logRepo repository.ActivityLogRepository,
	stockRepo repository.StockTypeRepository,
	locationRepo repository.LocationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	instRepo := NewInstanceRepository(tx)
	logRepo := NewActivityLogRepository(tx)
	stockRepo := NewStockTypeRepository(tx)
	locationRepo := NewLocationRepository(tx)

	if err := fn(instRepo, logRepo, stockRepo, locationRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
