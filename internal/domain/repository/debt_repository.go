package repository

import (
	"time"

	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
)

// DebtFilter filtros opcionales para listados de deudas.
type DebtFilter struct {
	CustomerID string
	SellerID   string
	Status     string
	Currency   string
}

// DebtRepository define el puerto de persistencia para Debt (DIP).
type DebtRepository interface {
	Create(debt *entity.Debt) error
	GetByID(companyID, id string) (*entity.Debt, error)
	// GetByCustomerAndDueDate localiza una deuda por la clave natural del
	// import masivo (cliente + vencimiento); nil si no existe.
	GetByCustomerAndDueDate(companyID, customerID string, dueDate time.Time) (*entity.Debt, error)
	ListByCompany(companyID string, f DebtFilter, limit, offset int) ([]*entity.Debt, error)
	Update(debt *entity.Debt) error
	Delete(companyID, id string) error
	// ReassignSeller reescribe seller_id de from → to en bloque.
	ReassignSeller(companyID, fromSellerID, toSellerID string) (int64, error)
}
