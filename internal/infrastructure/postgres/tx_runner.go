package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ruvello/export-api/internal/application/billing"
	"github.com/ruvello/export-api/internal/application/measurement"
	"github.com/ruvello/export-api/internal/domain/repository"
)

// Ensure TxRunner implements both application transaction ports.
var _ billing.TxRunner = (*TxRunner)(nil)
var _ measurement.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner on the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunInvoice opens a transaction, runs fn with an invoice repo bound to the
// tx, and commits or rolls back. Header and item writes inside fn are atomic.
func (r *TxRunner) RunInvoice(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewInvoiceRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunMeasurement opens a transaction with a measurement repo bound to the
// tx, so a sheet and all its slab rows land together or not at all.
func (r *TxRunner) RunMeasurement(ctx context.Context, fn func(repo repository.MeasurementRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewMeasurementRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
