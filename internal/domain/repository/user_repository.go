package repository

import "github.com/tu-usuario/cobranzas-pro/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Todas las operaciones de jerarquía están acotadas por companyID: el
// subsistema nunca emite una consulta sin filtro de tenant.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByCompanyAndID(companyID, id string) (*entity.User, error)
	GetByEmailAndCompany(email, companyID string) (*entity.User, error)
	// FindByFullName busca por nombre (case-insensitive) dentro de la empresa;
	// lo usa el import masivo para resolver vendedores por nombre.
	FindByFullName(companyID, fullName string) (*entity.User, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.User, error)
	ListAllByCompany(companyID string) ([]*entity.User, error)
	Update(user *entity.User) error
	UpdatePassword(id, passwordHash string) error
	Delete(companyID, id string) error

	// ── Jerarquía de reporte ──────────────────────────────────────────────

	// ListByManagerIn devuelve los usuarios de la empresa cuyo manager_id está
	// en managerIDs (una ronda de la expansión breadth-first).
	ListByManagerIn(companyID string, managerIDs []string) ([]*entity.User, error)
	// ListSelfManaged devuelve los usuarios con manager_id = id (self-loop a 1 salto).
	ListSelfManaged(companyID string) ([]*entity.User, error)
	// UpdateManagerID reescribe manager_id para todos los ids indicados en un
	// solo statement (atómico a nivel de sentencia). managerID nil desengancha.
	UpdateManagerID(companyID string, ids []string, managerID *string) (int64, error)
}
