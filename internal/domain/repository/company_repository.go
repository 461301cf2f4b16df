package repository

import "github.com/tu-usuario/cobranzas-pro/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetBySlug(slug string) (*entity.Company, error)
	Update(company *entity.Company) error
	List(limit, offset int) ([]*entity.Company, error)
	Delete(id string) error

	// GetSettings devuelve la configuración de la empresa; nil si nunca se guardó.
	GetSettings(companyID string) (*entity.CompanySettings, error)
	SaveSettings(settings *entity.CompanySettings) error
}
