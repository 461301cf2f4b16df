package collections

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/cobranzas-pro/internal/application/dto"
	"github.com/tu-usuario/cobranzas-pro/internal/domain"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/repository"
)

// FollowUpUseCase seguimiento de cobranza: promesas de pago y notas.
type FollowUpUseCase struct {
	debts    repository.DebtRepository
	promises repository.PaymentPromiseRepository
	notes    repository.NoteRepository
}

// NewFollowUpUseCase construye el caso de uso.
func NewFollowUpUseCase(debts repository.DebtRepository, promises repository.PaymentPromiseRepository, notes repository.NoteRepository) *FollowUpUseCase {
	return &FollowUpUseCase{debts: debts, promises: promises, notes: notes}
}

// CreatePromise registra el compromiso del deudor de abonar un monto en una
// fecha. Nace en estado "pending".
func (uc *FollowUpUseCase) CreatePromise(companyID, userID string, in dto.CreatePromiseRequest) (*dto.PromiseResponse, error) {
	if companyID == "" || in.DebtID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.PromisedAmount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	promisedDate, ok := NormalizeDate(in.PromisedDate)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	debt, err := uc.debts.GetByID(companyID, in.DebtID)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	promise := &entity.PaymentPromise{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		DebtID:         debt.ID,
		CustomerID:     debt.CustomerID,
		PromisedAmount: in.PromisedAmount,
		PromisedDate:   promisedDate,
		Status:         entity.PromiseStatusPending,
		Notes:          in.Notes,
		CreatedBy:      userID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.promises.Create(promise); err != nil {
		return nil, err
	}
	return toPromiseResponse(promise), nil
}

// ResolvePromise marca una promesa pendiente como cumplida o rota.
// Las promesas ya resueltas no se tocan (ErrConflict).
func (uc *FollowUpUseCase) ResolvePromise(companyID, id string, kept bool) (*dto.PromiseResponse, error) {
	promise, err := uc.promises.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if promise == nil {
		return nil, domain.ErrNotFound
	}
	if promise.Status != entity.PromiseStatusPending {
		return nil, domain.ErrConflict
	}
	status := entity.PromiseStatusBroken
	if kept {
		status = entity.PromiseStatusKept
	}
	if err := uc.promises.UpdateStatus(companyID, id, status); err != nil {
		return nil, err
	}
	promise.Status = status
	return toPromiseResponse(promise), nil
}

// ListPromisesByDebt lista las promesas de una deuda.
func (uc *FollowUpUseCase) ListPromisesByDebt(companyID, debtID string) ([]*dto.PromiseResponse, error) {
	promises, err := uc.promises.ListByDebt(companyID, debtID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PromiseResponse, 0, len(promises))
	for _, p := range promises {
		out = append(out, toPromiseResponse(p))
	}
	return out, nil
}

// AddNote registra una anotación de seguimiento sobre un cliente (y
// opcionalmente una deuda concreta).
func (uc *FollowUpUseCase) AddNote(companyID, userID string, in dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	if companyID == "" || in.CustomerID == "" || in.Body == "" {
		return nil, domain.ErrInvalidInput
	}
	var debtID *string
	if in.DebtID != "" {
		debt, err := uc.debts.GetByID(companyID, in.DebtID)
		if err != nil {
			return nil, err
		}
		if debt == nil {
			return nil, domain.ErrNotFound
		}
		debtID = &debt.ID
	}
	note := &entity.Note{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		CustomerID: in.CustomerID,
		DebtID:     debtID,
		Body:       in.Body,
		CreatedBy:  userID,
		CreatedAt:  time.Now(),
	}
	if err := uc.notes.Create(note); err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

// ListNotesByCustomer lista las notas de un cliente.
func (uc *FollowUpUseCase) ListNotesByCustomer(companyID, customerID string) ([]*dto.NoteResponse, error) {
	notes, err := uc.notes.ListByCustomer(companyID, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNoteResponse(n))
	}
	return out, nil
}

func toPromiseResponse(p *entity.PaymentPromise) *dto.PromiseResponse {
	return &dto.PromiseResponse{
		ID:             p.ID,
		DebtID:         p.DebtID,
		CustomerID:     p.CustomerID,
		PromisedAmount: p.PromisedAmount,
		PromisedDate:   p.PromisedDate,
		Status:         p.Status,
		Notes:          p.Notes,
	}
}

func toNoteResponse(n *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		ID:         n.ID,
		CustomerID: n.CustomerID,
		DebtID:     n.DebtID,
		Body:       n.Body,
		CreatedBy:  n.CreatedBy,
		CreatedAt:  n.CreatedAt,
	}
}
