package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/repository"
)

var _ repository.PaymentPromiseRepository = (*PromiseRepo)(nil)

const promiseColumns = `id, company_id, debt_id, customer_id, promised_amount, promised_date, status, notes, created_by, created_at, updated_at`

// PromiseRepo implementación del puerto PaymentPromiseRepository sobre PostgreSQL.
type PromiseRepo struct {
	q Querier
}

// NewPromiseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPromiseRepository(q Querier) *PromiseRepo {
	return &PromiseRepo{q: q}
}

// Create persiste una nueva promesa de pago.
func (r *PromiseRepo) Create(promise *entity.PaymentPromise) error {
	query := `
		INSERT INTO payment_promises (` + promiseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		promise.ID, promise.CompanyID, promise.DebtID, promise.CustomerID,
		promise.PromisedAmount, promise.PromisedDate, promise.Status, promise.Notes,
		promise.CreatedBy, promise.CreatedAt, promise.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert promise: %w", err)
	}
	return nil
}

// GetByID obtiene una promesa de la empresa.
func (r *PromiseRepo) GetByID(companyID, id string) (*entity.PaymentPromise, error) {
	var p entity.PaymentPromise
	err := r.q.QueryRow(context.Background(),
		`SELECT `+promiseColumns+` FROM payment_promises WHERE company_id = $1 AND id = $2`,
		companyID, id,
	).Scan(
		&p.ID, &p.CompanyID, &p.DebtID, &p.CustomerID, &p.PromisedAmount, &p.PromisedDate,
		&p.Status, &p.Notes, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get promise: %w", err)
	}
	return &p, nil
}

// ListByDebt lista las promesas de una deuda.
func (r *PromiseRepo) ListByDebt(companyID, debtID string) ([]*entity.PaymentPromise, error) {
	return r.scanMany(
		`SELECT `+promiseColumns+` FROM payment_promises WHERE company_id = $1 AND debt_id = $2 ORDER BY promised_date`,
		companyID, debtID,
	)
}

// ListByCustomer lista las promesas de un cliente.
func (r *PromiseRepo) ListByCustomer(companyID, customerID string) ([]*entity.PaymentPromise, error) {
	return r.scanMany(
		`SELECT `+promiseColumns+` FROM payment_promises WHERE company_id = $1 AND customer_id = $2 ORDER BY promised_date`,
		companyID, customerID,
	)
}

// UpdateStatus cambia el estado de una promesa.
func (r *PromiseRepo) UpdateStatus(companyID, id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE payment_promises SET status = $3, updated_at = NOW() WHERE company_id = $1 AND id = $2`,
		companyID, id, status,
	)
	if err != nil {
		return fmt.Errorf("update promise status: %w", err)
	}
	return nil
}

func (r *PromiseRepo) scanMany(query string, args ...any) ([]*entity.PaymentPromise, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list promises: %w", err)
	}
	defer rows.Close()

	var out []*entity.PaymentPromise
	for rows.Next() {
		var p entity.PaymentPromise
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.DebtID, &p.CustomerID, &p.PromisedAmount, &p.PromisedDate,
			&p.Status, &p.Notes, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan promise: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
