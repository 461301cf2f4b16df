package repository

import "github.com/tu-usuario/cobranzas-pro/internal/domain/entity"

// NoteRepository define el puerto de persistencia para Note.
type NoteRepository interface {
	Create(note *entity.Note) error
	ListByCustomer(companyID, customerID string) ([]*entity.Note, error)
	ListByDebt(companyID, debtID string) ([]*entity.Note, error)
}
