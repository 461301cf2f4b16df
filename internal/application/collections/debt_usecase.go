package collections

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/cobranzas-pro/internal/application/dto"
	"github.com/tu-usuario/cobranzas-pro/internal/domain"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/repository"
)

// DebtUseCase gestión de cuentas por cobrar: alta manual, listados filtrados,
// patch parcial y baja.
type DebtUseCase struct {
	debts     repository.DebtRepository
	customers repository.CustomerRepository
	users     repository.UserRepository
}

// NewDebtUseCase construye el caso de uso con los puertos de persistencia.
func NewDebtUseCase(debts repository.DebtRepository, customers repository.CustomerRepository, users repository.UserRepository) *DebtUseCase {
	return &DebtUseCase{debts: debts, customers: customers, users: users}
}

// Create registra una deuda. El cliente puede venir por id o por nombre (si el
// nombre no existe se crea sobre la marcha, igual que en el import masivo).
func (uc *DebtUseCase) Create(companyID string, in dto.CreateDebtRequest) (*dto.DebtResponse, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	currency, ok := NormalizeCurrency(in.Currency)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	dueDate, ok := NormalizeDate(in.DueDate)
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	customer, err := uc.resolveCustomer(companyID, in.CustomerID, in.CustomerName, in.SellerID)
	if err != nil {
		return nil, err
	}

	var sellerID *string
	if in.SellerID != "" {
		seller, err := uc.users.GetByCompanyAndID(companyID, in.SellerID)
		if err != nil {
			return nil, err
		}
		if seller == nil {
			return nil, domain.ErrUserNotFound
		}
		sellerID = &seller.ID
	}

	now := time.Now()
	debt := &entity.Debt{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		CustomerID:  customer.ID,
		SellerID:    sellerID,
		Amount:      in.Amount,
		Remaining:   in.Amount,
		Currency:    currency,
		DueDate:     dueDate,
		Status:      entity.DebtStatusActive,
		Description: in.ReceivableType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.debts.Create(debt); err != nil {
		return nil, err
	}
	return toDebtResponse(debt), nil
}

// GetByID obtiene una deuda de la empresa.
func (uc *DebtUseCase) GetByID(companyID, id string) (*dto.DebtResponse, error) {
	debt, err := uc.debts.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, domain.ErrNotFound
	}
	return toDebtResponse(debt), nil
}

// List lista deudas con filtros opcionales y paginación.
func (uc *DebtUseCase) List(companyID string, f repository.DebtFilter, page dto.PageRequest) ([]*dto.DebtResponse, error) {
	page.DefaultPage()
	debts, err := uc.debts.ListByCompany(companyID, f, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DebtResponse, 0, len(debts))
	for _, d := range debts {
		out = append(out, toDebtResponse(d))
	}
	return out, nil
}

// Update aplica un patch parcial. El vendedor puede venir por id o por nombre;
// el monto solo se acepta si la deuda no tiene pagos aplicados (Remaining ==
// Amount), para no descuadrar el saldo.
func (uc *DebtUseCase) Update(companyID, id string, in dto.UpdateDebtRequest) (*dto.DebtResponse, error) {
	debt, err := uc.debts.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, domain.ErrNotFound
	}

	if !in.Amount.IsZero() {
		if !in.Amount.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		if !debt.Remaining.Equal(debt.Amount) {
			return nil, domain.ErrConflict // ya tiene pagos aplicados
		}
		debt.Amount = in.Amount
		debt.Remaining = in.Amount
	}
	if in.Currency != "" {
		currency, ok := NormalizeCurrency(in.Currency)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		debt.Currency = currency
	}
	if in.DueDate != "" {
		dueDate, ok := NormalizeDate(in.DueDate)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		debt.DueDate = dueDate
	}
	if in.ReceivableType != "" {
		debt.Description = in.ReceivableType
	}
	if in.CustomerName != "" {
		customer, err := uc.resolveCustomer(companyID, "", in.CustomerName, "")
		if err != nil {
			return nil, err
		}
		debt.CustomerID = customer.ID
	}
	if in.SellerID != "" || in.SellerName != "" {
		seller, err := uc.resolveSeller(companyID, in.SellerID, in.SellerName)
		if err != nil {
			return nil, err
		}
		debt.SellerID = &seller.ID
	}

	debt.UpdatedAt = time.Now()
	if err := uc.debts.Update(debt); err != nil {
		return nil, err
	}
	return toDebtResponse(debt), nil
}

// Delete borra una deuda de la empresa.
func (uc *DebtUseCase) Delete(companyID, id string) error {
	debt, err := uc.debts.GetByID(companyID, id)
	if err != nil {
		return err
	}
	if debt == nil {
		return domain.ErrNotFound
	}
	return uc.debts.Delete(companyID, id)
}

// resolveCustomer localiza el cliente por id o por nombre; si solo hay nombre
// y no existe, lo crea con el vendedor indicado como responsable.
func (uc *DebtUseCase) resolveCustomer(companyID, customerID, customerName, sellerID string) (*entity.Customer, error) {
	if customerID != "" {
		customer, err := uc.customers.GetByID(companyID, customerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
		return customer, nil
	}
	name := strings.TrimSpace(customerName)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customers.GetByCompanyAndName(companyID, name)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		return customer, nil
	}
	var assigned *string
	if sellerID != "" {
		assigned = &sellerID
	}
	now := time.Now()
	customer = &entity.Customer{
		ID:               uuid.New().String(),
		CompanyID:        companyID,
		Name:             name,
		AssignedSellerID: assigned,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.customers.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (uc *DebtUseCase) resolveSeller(companyID, sellerID, sellerName string) (*entity.User, error) {
	if sellerID != "" {
		seller, err := uc.users.GetByCompanyAndID(companyID, sellerID)
		if err != nil {
			return nil, err
		}
		if seller == nil {
			return nil, domain.ErrUserNotFound
		}
		return seller, nil
	}
	seller, err := uc.users.FindByFullName(companyID, sellerName)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrUserNotFound
	}
	return seller, nil
}

func toDebtResponse(d *entity.Debt) *dto.DebtResponse {
	return &dto.DebtResponse{
		ID:          d.ID,
		CompanyID:   d.CompanyID,
		CustomerID:  d.CustomerID,
		SellerID:    d.SellerID,
		Amount:      d.Amount,
		Remaining:   d.Remaining,
		Currency:    d.Currency,
		DueDate:     d.DueDate,
		Status:      d.Status,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}
