package repository

import "github.com/tu-usuario/cobranzas-pro/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(companyID, id string) (*entity.Customer, error)
	GetByCompanyAndName(companyID, name string) (*entity.Customer, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(companyID, id string) error
	// ReassignSeller reescribe assigned_seller_id de from → to en bloque
	// (transferencia plana de cartera, sin semántica de árbol).
	ReassignSeller(companyID, fromSellerID, toSellerID string) (int64, error)
}
