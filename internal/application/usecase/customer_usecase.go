package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/cobranzas-pro/internal/application/dto"
	"github.com/tu-usuario/cobranzas-pro/internal/domain"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/repository"
)

// CustomerUseCase gestión de clientes/deudores de la empresa.
type CustomerUseCase struct {
	repo  repository.CustomerRepository
	users repository.UserRepository
}

// NewCustomerUseCase construye el caso de uso con los puertos de persistencia.
func NewCustomerUseCase(repo repository.CustomerRepository, users repository.UserRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, users: users}
}

// Create da de alta un cliente; si viene AssignedSellerID valida que el
// vendedor exista en la misma empresa.
func (uc *CustomerUseCase) Create(companyID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if companyID == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCompanyAndName(companyID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	var sellerID *string
	if in.AssignedSellerID != "" {
		seller, err := uc.users.GetByCompanyAndID(companyID, in.AssignedSellerID)
		if err != nil {
			return nil, err
		}
		if seller == nil {
			return nil, domain.ErrUserNotFound
		}
		sellerID = &seller.ID
	}

	now := time.Now()
	customer := &entity.Customer{
		ID:               uuid.New().String(),
		CompanyID:        companyID,
		Name:             strings.TrimSpace(in.Name),
		Email:            in.Email,
		Phone:            in.Phone,
		AssignedSellerID: sellerID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente de la empresa.
func (uc *CustomerUseCase) GetByID(companyID, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List lista los clientes con paginación.
func (uc *CustomerUseCase) List(companyID string, page dto.PageRequest) ([]*dto.CustomerResponse, error) {
	page.DefaultPage()
	customers, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update aplica un patch parcial (campos vacíos se ignoran).
func (uc *CustomerUseCase) Update(companyID, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		customer.Name = strings.TrimSpace(in.Name)
	}
	if in.Email != "" {
		customer.Email = in.Email
	}
	if in.Phone != "" {
		customer.Phone = in.Phone
	}
	if in.AssignedSellerID != "" {
		seller, err := uc.users.GetByCompanyAndID(companyID, in.AssignedSellerID)
		if err != nil {
			return nil, err
		}
		if seller == nil {
			return nil, domain.ErrUserNotFound
		}
		customer.AssignedSellerID = &seller.ID
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete borra un cliente de la empresa.
func (uc *CustomerUseCase) Delete(companyID, id string) error {
	customer, err := uc.repo.GetByID(companyID, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(companyID, id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:               c.ID,
		CompanyID:        c.CompanyID,
		Name:             c.Name,
		Email:            c.Email,
		Phone:            c.Phone,
		AssignedSellerID: c.AssignedSellerID,
		CreatedAt:        c.CreatedAt,
	}
}
