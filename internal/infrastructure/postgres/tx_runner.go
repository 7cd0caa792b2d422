package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/manufacturing-pro/internal/application/production"
	"github.com/tu-usuario/manufacturing-pro/internal/application/stock"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/repository"
)

// Ensure TxRunner implements production.TxRunner and stock.TxRunner.
var _ production.TxRunner = (*TxRunner)(nil)
var _ stock.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con los repos del núcleo de producción
// (transiciones de órdenes de trabajo y liquidación) y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.ManufacturingOrderRepository,
	workRepo repository.WorkOrderRepository,
	entryRepo repository.StockEntryRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewManufacturingOrderRepository(tx)
	workRepo := NewWorkOrderRepository(tx)
	entryRepo := NewStockEntryRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(orderRepo, workRepo, entryRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCreate inicia una transacción con los repos de la fábrica de órdenes
// (orden + cadena de pasos como unidad atómica).
func (r *TxRunner) RunCreate(ctx context.Context, fn func(
	orderRepo repository.ManufacturingOrderRepository,
	workRepo repository.WorkOrderRepository,
	productRepo repository.ProductRepository,
	bomRepo repository.BOMRepository,
	routeRepo repository.RouteRepository,
	centerRepo repository.WorkCenterRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewManufacturingOrderRepository(tx)
	workRepo := NewWorkOrderRepository(tx)
	productRepo := NewProductRepository(tx)
	bomRepo := NewBOMRepository(tx)
	routeRepo := NewRouteRepository(tx)
	centerRepo := NewWorkCenterRepository(tx)

	if err := fn(orderRepo, workRepo, productRepo, bomRepo, routeRepo, centerRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunStock inicia una transacción con los repos del libro de stock
// (leer saldo y asentar el siguiente movimiento en una sola tx).
func (r *TxRunner) RunStock(ctx context.Context, fn func(
	entryRepo repository.StockEntryRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	entryRepo := NewStockEntryRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(entryRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
