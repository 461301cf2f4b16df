package repository

import "github.com/tu-usuario/cobranzas-pro/internal/domain/entity"

// PaymentPromiseRepository define el puerto de persistencia para PaymentPromise.
type PaymentPromiseRepository interface {
	Create(promise *entity.PaymentPromise) error
	GetByID(companyID, id string) (*entity.PaymentPromise, error)
	ListByDebt(companyID, debtID string) ([]*entity.PaymentPromise, error)
	ListByCustomer(companyID, customerID string) ([]*entity.PaymentPromise, error)
	UpdateStatus(companyID, id, status string) error
}
