package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

const paymentColumns = `id, company_id, debt_id, customer_id, amount, currency, method, reference, paid_at, created_by, created_at`

// PaymentRepo implementación del puerto PaymentRepository sobre PostgreSQL.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un nuevo pago.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.CompanyID, payment.DebtID, payment.CustomerID, payment.Amount,
		payment.Currency, payment.Method, payment.Reference, payment.PaidAt,
		payment.CreatedBy, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// ListByDebt lista los pagos de una deuda.
func (r *PaymentRepo) ListByDebt(companyID, debtID string) ([]*entity.Payment, error) {
	return r.scanMany(
		`SELECT `+paymentColumns+` FROM payments WHERE company_id = $1 AND debt_id = $2 ORDER BY paid_at`,
		companyID, debtID,
	)
}

// ListByCustomer lista los pagos de un cliente (estado de cuenta).
func (r *PaymentRepo) ListByCustomer(companyID, customerID string) ([]*entity.Payment, error) {
	return r.scanMany(
		`SELECT `+paymentColumns+` FROM payments WHERE company_id = $1 AND customer_id = $2 ORDER BY paid_at`,
		companyID, customerID,
	)
}

func (r *PaymentRepo) scanMany(query string, args ...any) ([]*entity.Payment, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var out []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.DebtID, &p.CustomerID, &p.Amount,
			&p.Currency, &p.Method, &p.Reference, &p.PaidAt, &p.CreatedBy, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
