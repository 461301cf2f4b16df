package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/cobranzas-pro/internal/application/collections"
	"github.com/tu-usuario/cobranzas-pro/internal/application/hierarchy"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/repository"
)

var _ hierarchy.TxRunner = (*TxRunner)(nil)
var _ collections.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunUsers inicia una transacción, ejecuta fn con el repo de usuarios atado a
// la tx y hace Commit o Rollback (expansión + reescritura de la jerarquía).
func (r *TxRunner) RunUsers(ctx context.Context, fn func(users repository.UserRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewUserRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCollections inicia una transacción con repos de deudas y pagos (registro
// de abonos: el pago y el descuento del saldo se confirman juntos).
func (r *TxRunner) RunCollections(ctx context.Context, fn func(
	debts repository.DebtRepository,
	payments repository.PaymentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewDebtRepository(tx), NewPaymentRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
