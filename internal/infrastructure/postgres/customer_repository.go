package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/cobranzas-pro/internal/domain"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, company_id, name, email, phone, assigned_seller_id, created_at, updated_at`

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.CompanyID, customer.Name, customer.Email, customer.Phone,
		customer.AssignedSellerID, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente de la empresa.
func (r *CustomerRepo) GetByID(companyID, id string) (*entity.Customer, error) {
	return r.scanOne(`SELECT `+customerColumns+` FROM customers WHERE company_id = $1 AND id = $2`, companyID, id)
}

// GetByCompanyAndName localiza un cliente por nombre exacto dentro de la empresa.
func (r *CustomerRepo) GetByCompanyAndName(companyID, name string) (*entity.Customer, error) {
	return r.scanOne(
		`SELECT `+customerColumns+` FROM customers WHERE company_id = $1 AND name = $2 LIMIT 1`,
		companyID, name,
	)
}

// ListByCompany lista los clientes de la empresa con paginación.
func (r *CustomerRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+customerColumns+` FROM customers WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`,
		companyID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var out []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(
			&c.ID, &c.CompanyID, &c.Name, &c.Email, &c.Phone,
			&c.AssignedSellerID, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Update actualiza un cliente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $3, email = $4, phone = $5, assigned_seller_id = $6, updated_at = $7
		WHERE company_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		customer.CompanyID, customer.ID, customer.Name, customer.Email, customer.Phone,
		customer.AssignedSellerID, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete borra un cliente de la empresa.
func (r *CustomerRepo) Delete(companyID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM customers WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

// ReassignSeller reescribe assigned_seller_id de from → to en un solo statement.
func (r *CustomerRepo) ReassignSeller(companyID, fromSellerID, toSellerID string) (int64, error) {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE customers SET assigned_seller_id = $3, updated_at = NOW()
		 WHERE company_id = $1 AND assigned_seller_id = $2`,
		companyID, fromSellerID, toSellerID,
	)
	if err != nil {
		return 0, fmt.Errorf("reassign customers: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *CustomerRepo) scanOne(query string, args ...any) (*entity.Customer, error) {
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Email, &c.Phone,
		&c.AssignedSellerID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}
