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

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, company_id, email, password_hash, full_name, role, manager_id, status, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.CompanyID, user.Email, user.PasswordHash, user.FullName,
		user.Role, user.ManagerID, user.Status, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.scanOne(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email (cualquier company).
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.scanOne(`SELECT `+userColumns+` FROM users WHERE email = $1 LIMIT 1`, email)
}

// GetByCompanyAndID obtiene un usuario de una empresa concreta.
func (r *UserRepo) GetByCompanyAndID(companyID, id string) (*entity.User, error) {
	return r.scanOne(`SELECT `+userColumns+` FROM users WHERE company_id = $1 AND id = $2`, companyID, id)
}

// GetByEmailAndCompany obtiene un usuario por email dentro de una empresa.
func (r *UserRepo) GetByEmailAndCompany(email, companyID string) (*entity.User, error) {
	return r.scanOne(`SELECT `+userColumns+` FROM users WHERE email = $1 AND company_id = $2`, email, companyID)
}

// FindByFullName busca por nombre completo (case-insensitive) dentro de la empresa.
func (r *UserRepo) FindByFullName(companyID, fullName string) (*entity.User, error) {
	return r.scanOne(
		`SELECT `+userColumns+` FROM users WHERE company_id = $1 AND LOWER(full_name) = LOWER($2) LIMIT 1`,
		companyID, fullName,
	)
}

// ListByCompany lista el personal de la empresa con paginación.
func (r *UserRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.User, error) {
	return r.scanMany(
		`SELECT `+userColumns+` FROM users WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		companyID, limit, offset,
	)
}

// ListAllByCompany lista todo el personal de la empresa (export).
func (r *UserRepo) ListAllByCompany(companyID string) ([]*entity.User, error) {
	return r.scanMany(
		`SELECT `+userColumns+` FROM users WHERE company_id = $1 ORDER BY full_name`,
		companyID,
	)
}

// Update actualiza un usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET email = $2, full_name = $3, role = $4, manager_id = $5, status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.FullName, user.Role, user.ManagerID, user.Status, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// UpdatePassword reemplaza el hash de contraseña.
func (r *UserRepo) UpdatePassword(id, passwordHash string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// Delete borra un usuario de la empresa.
func (r *UserRepo) Delete(companyID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM users WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// ListByManagerIn devuelve los usuarios cuyo manager_id está en managerIDs.
// Una sola consulta resuelve toda la frontera de una ronda de expansión.
func (r *UserRepo) ListByManagerIn(companyID string, managerIDs []string) ([]*entity.User, error) {
	return r.scanMany(
		`SELECT `+userColumns+` FROM users WHERE company_id = $1 AND manager_id = ANY($2)`,
		companyID, managerIDs,
	)
}

// ListSelfManaged devuelve los usuarios con manager_id = id (self-loop a 1 salto).
func (r *UserRepo) ListSelfManaged(companyID string) ([]*entity.User, error) {
	return r.scanMany(
		`SELECT `+userColumns+` FROM users WHERE company_id = $1 AND manager_id = id`,
		companyID,
	)
}

// UpdateManagerID reescribe manager_id para todos los ids en un solo statement.
func (r *UserRepo) UpdateManagerID(companyID string, ids []string, managerID *string) (int64, error) {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE users SET manager_id = $3, updated_at = NOW() WHERE company_id = $1 AND id = ANY($2)`,
		companyID, ids, managerID,
	)
	if err != nil {
		return 0, fmt.Errorf("update manager_id: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *UserRepo) scanOne(query string, args ...any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.CompanyID, &u.Email, &u.PasswordHash, &u.FullName,
		&u.Role, &u.ManagerID, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (r *UserRepo) scanMany(query string, args ...any) ([]*entity.User, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.CompanyID, &u.Email, &u.PasswordHash, &u.FullName,
			&u.Role, &u.ManagerID, &u.Status, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}
