package repository

import "github.com/tu-usuario/cobranzas-pro/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para Payment (DIP).
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	ListByDebt(companyID, debtID string) ([]*entity.Payment, error)
	ListByCustomer(companyID, customerID string) ([]*entity.Payment, error)
}
