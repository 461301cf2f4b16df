package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/repository"
)

var _ repository.DebtRepository = (*DebtRepo)(nil)

const debtColumns = `id, company_id, customer_id, seller_id, amount, remaining_amount, currency, due_date, status, description, created_at, updated_at`

// DebtRepo implementación del puerto DebtRepository sobre PostgreSQL.
type DebtRepo struct {
	q Querier
}

// NewDebtRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDebtRepository(q Querier) *DebtRepo {
	return &DebtRepo{q: q}
}

// Create persiste una nueva deuda.
func (r *DebtRepo) Create(debt *entity.Debt) error {
	query := `
		INSERT INTO debts (` + debtColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		debt.ID, debt.CompanyID, debt.CustomerID, debt.SellerID, debt.Amount, debt.Remaining,
		debt.Currency, debt.DueDate, debt.Status, debt.Description, debt.CreatedAt, debt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert debt: %w", err)
	}
	return nil
}

// GetByID obtiene una deuda de la empresa.
func (r *DebtRepo) GetByID(companyID, id string) (*entity.Debt, error) {
	return r.scanOne(`SELECT `+debtColumns+` FROM debts WHERE company_id = $1 AND id = $2`, companyID, id)
}

// GetByCustomerAndDueDate localiza una deuda por la clave natural del import
// masivo (cliente + vencimiento); nil si no existe.
func (r *DebtRepo) GetByCustomerAndDueDate(companyID, customerID string, dueDate time.Time) (*entity.Debt, error) {
	return r.scanOne(
		`SELECT `+debtColumns+` FROM debts WHERE company_id = $1 AND customer_id = $2 AND due_date = $3 LIMIT 1`,
		companyID, customerID, dueDate,
	)
}

// ListByCompany lista deudas con filtros opcionales y paginación.
func (r *DebtRepo) ListByCompany(companyID string, f repository.DebtFilter, limit, offset int) ([]*entity.Debt, error) {
	var b strings.Builder
	b.WriteString(`SELECT ` + debtColumns + ` FROM debts WHERE company_id = $1`)
	args := []any{companyID}

	appendFilter := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		b.WriteString(" AND " + column + " = $" + strconv.Itoa(len(args)))
	}
	appendFilter("customer_id", f.CustomerID)
	appendFilter("seller_id", f.SellerID)
	appendFilter("status", f.Status)
	appendFilter("currency", f.Currency)

	args = append(args, limit, offset)
	b.WriteString(" ORDER BY due_date LIMIT $" + strconv.Itoa(len(args)-1) + " OFFSET $" + strconv.Itoa(len(args)))

	rows, err := r.q.Query(context.Background(), b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list debts: %w", err)
	}
	defer rows.Close()

	var out []*entity.Debt
	for rows.Next() {
		var d entity.Debt
		if err := rows.Scan(
			&d.ID, &d.CompanyID, &d.CustomerID, &d.SellerID, &d.Amount, &d.Remaining,
			&d.Currency, &d.DueDate, &d.Status, &d.Description, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan debt: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

// Update actualiza una deuda.
func (r *DebtRepo) Update(debt *entity.Debt) error {
	query := `
		UPDATE debts SET customer_id = $3, seller_id = $4, amount = $5, remaining_amount = $6,
		       currency = $7, due_date = $8, status = $9, description = $10, updated_at = $11
		WHERE company_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		debt.CompanyID, debt.ID, debt.CustomerID, debt.SellerID, debt.Amount, debt.Remaining,
		debt.Currency, debt.DueDate, debt.Status, debt.Description, debt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update debt: %w", err)
	}
	return nil
}

// Delete borra una deuda de la empresa.
func (r *DebtRepo) Delete(companyID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM debts WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete debt: %w", err)
	}
	return nil
}

// ReassignSeller reescribe seller_id de from → to en un solo statement.
func (r *DebtRepo) ReassignSeller(companyID, fromSellerID, toSellerID string) (int64, error) {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE debts SET seller_id = $3, updated_at = NOW()
		 WHERE company_id = $1 AND seller_id = $2`,
		companyID, fromSellerID, toSellerID,
	)
	if err != nil {
		return 0, fmt.Errorf("reassign debts: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *DebtRepo) scanOne(query string, args ...any) (*entity.Debt, error) {
	var d entity.Debt
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&d.ID, &d.CompanyID, &d.CustomerID, &d.SellerID, &d.Amount, &d.Remaining,
		&d.Currency, &d.DueDate, &d.Status, &d.Description, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get debt: %w", err)
	}
	return &d, nil
}
