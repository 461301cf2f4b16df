package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cobranzas-pro/internal/application/dto"
	"github.com/tu-usuario/cobranzas-pro/internal/application/usecase"
)

// CompanyHandler perfil y configuración del tenant autenticado.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler de empresa.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Profile godoc
// @Summary      Perfil de la empresa del token
// @Tags         company
// @Produce      json
// @Success      200  {object}  dto.CompanyResponse
// @Router       /api/company [get]
func (h *CompanyHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetSettings godoc
// @Summary      Configuración del tenant (monedas y tipos de cuenta)
// @Tags         company
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/company/settings [get]
func (h *CompanyHandler) GetSettings(c *fiber.Ctx) error {
	out, err := h.uc.GetSettings(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SaveSettings godoc
// @Summary      Guardar configuración del tenant
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SettingsRequest  true  "currencies, receivable_types"
// @Success      200   {object}  dto.SettingsResponse
// @Router       /api/company/settings [put]
func (h *CompanyHandler) SaveSettings(c *fiber.Ctx) error {
	var in dto.SettingsRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.SaveSettings(GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
