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

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, name, slug, email, phone, status, created_at, updated_at`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Slug, company.Email, company.Phone,
		company.Status, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlugAlreadyExists
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.scanOne(`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
}

// GetBySlug obtiene una empresa por su slug público.
func (r *CompanyRepo) GetBySlug(slug string) (*entity.Company, error) {
	return r.scanOne(`SELECT `+companyColumns+` FROM companies WHERE slug = $1`, slug)
}

// Update actualiza una empresa.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, slug = $3, email = $4, phone = $5, status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Slug, company.Email, company.Phone,
		company.Status, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlugAlreadyExists
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// List lista empresas con paginación (operación administrativa).
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+companyColumns+` FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var out []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Slug, &c.Email, &c.Phone, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Delete borra una empresa.
func (r *CompanyRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

// GetSettings devuelve la configuración de la empresa; nil si nunca se guardó.
func (r *CompanyRepo) GetSettings(companyID string) (*entity.CompanySettings, error) {
	var s entity.CompanySettings
	err := r.q.QueryRow(context.Background(),
		`SELECT company_id, currencies, receivable_types, updated_at FROM company_settings WHERE company_id = $1`,
		companyID,
	).Scan(&s.CompanyID, &s.Currencies, &s.ReceivableTypes, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// SaveSettings guarda la configuración (upsert por company_id).
func (r *CompanyRepo) SaveSettings(settings *entity.CompanySettings) error {
	query := `
		INSERT INTO company_settings (company_id, currencies, receivable_types, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (company_id) DO UPDATE
		SET currencies = EXCLUDED.currencies,
		    receivable_types = EXCLUDED.receivable_types,
		    updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		settings.CompanyID, settings.Currencies, settings.ReceivableTypes, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (r *CompanyRepo) scanOne(query string, args ...any) (*entity.Company, error) {
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&c.ID, &c.Name, &c.Slug, &c.Email, &c.Phone, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}
