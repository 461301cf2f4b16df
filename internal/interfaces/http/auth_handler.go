package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cobranzas-pro/internal/application/auth"
	"github.com/tu-usuario/cobranzas-pro/internal/application/dto"
)

// AuthHandler maneja alta de tenant, resolución por slug y login.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// RegisterCompany godoc
// @Summary      Registrar empresa + usuario admin
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterCompanyRequest  true  "datos de la empresa y del admin"
// @Success      201   {object}  dto.RegisterCompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) RegisterCompany(c *fiber.Ctx) error {
	var in dto.RegisterCompanyRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.RegisterCompany(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión en un tenant (por slug)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        slug  path  string           true  "slug de la empresa"
// @Param        body  body  dto.LoginRequest true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/companies/{slug}/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Login(c.Params("slug"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ResolveCompany godoc
// @Summary      Resolver un tenant por slug (pantalla de login)
// @Tags         auth
// @Produce      json
// @Param        slug  path  string  true  "slug de la empresa"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{slug} [get]
func (h *AuthHandler) ResolveCompany(c *fiber.Ctx) error {
	out, err := h.uc.ResolveCompany(c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
