package usecase

import (
	"time"

	"github.com/tu-usuario/cobranzas-pro/internal/application/dto"
	"github.com/tu-usuario/cobranzas-pro/internal/domain"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/repository"
)

// defaultSettings configuración inicial de un tenant que nunca guardó la suya.
var defaultSettings = entity.CompanySettings{
	Currencies:      []string{entity.CurrencyTRY, entity.CurrencyUSD, entity.CurrencyEUR},
	ReceivableTypes: []string{"factura", "cheque", "pagaré"},
}

// CompanyUseCase perfil y configuración del tenant.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// GetByID obtiene el perfil de la empresa.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.CompanyResponse{
		ID:     company.ID,
		Name:   company.Name,
		Slug:   company.Slug,
		Email:  company.Email,
		Status: company.Status,
	}, nil
}

// GetSettings devuelve la configuración vigente; si la empresa nunca guardó
// una, devuelve los valores por defecto sin persistirlos.
func (uc *CompanyUseCase) GetSettings(companyID string) (*dto.SettingsResponse, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	settings, err := uc.repo.GetSettings(companyID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		s := defaultSettings
		s.CompanyID = companyID
		settings = &s
	}
	return toSettingsResponse(settings), nil
}

// SaveSettings guarda la configuración del tenant (upsert).
func (uc *CompanyUseCase) SaveSettings(companyID string, in dto.SettingsRequest) (*dto.SettingsResponse, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	settings := &entity.CompanySettings{
		CompanyID:       companyID,
		Currencies:      in.Currencies,
		ReceivableTypes: in.ReceivableTypes,
		UpdatedAt:       time.Now(),
	}
	if err := uc.repo.SaveSettings(settings); err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func toSettingsResponse(s *entity.CompanySettings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		CompanyID:       s.CompanyID,
		Currencies:      s.Currencies,
		ReceivableTypes: s.ReceivableTypes,
		UpdatedAt:       s.UpdatedAt,
	}
}
