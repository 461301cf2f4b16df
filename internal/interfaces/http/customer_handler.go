package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cobranzas-pro/internal/application/collections"
	"github.com/tu-usuario/cobranzas-pro/internal/application/dto"
	"github.com/tu-usuario/cobranzas-pro/internal/application/usecase"
)

// CustomerHandler gestión de clientes/deudores y su estado de cuenta.
type CustomerHandler struct {
	uc        *usecase.CustomerUseCase
	statement *collections.StatementUseCase
	followUp  *collections.FollowUpUseCase
}

// NewCustomerHandler construye el handler de clientes.
func NewCustomerHandler(uc *usecase.CustomerUseCase, statement *collections.StatementUseCase, followUp *collections.FollowUpUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc, statement: statement, followUp: followUp}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "datos del cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar clientes
// @Tags         customers
// @Produce      json
// @Success      200  {array}  dto.CustomerResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.uc.List(GetCompanyID(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener un cliente
// @Tags         customers
// @Produce      json
// @Param        id  path  string  true  "id del cliente"
// @Success      200  {object}  dto.CustomerResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar un cliente (patch parcial)
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "id del cliente"
// @Param        body  body  dto.UpdateCustomerRequest true  "campos a cambiar"
// @Success      200   {object}  dto.CustomerResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Update(GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar un cliente
// @Tags         customers
// @Param        id  path  string  true  "id del cliente"
// @Success      204
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCompanyID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Statement godoc
// @Summary      Estado de cuenta del cliente en PDF
// @Tags         customers
// @Produce      application/pdf
// @Param        id  path  string  true  "id del cliente"
// @Success      200  {file}  binary
// @Router       /api/customers/{id}/statement [get]
func (h *CustomerHandler) Statement(c *fiber.Ctx) error {
	pdfBytes, err := h.statement.Generate(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="estado-de-cuenta.pdf"`)
	return c.Send(pdfBytes)
}

// Notes godoc
// @Summary      Notas de seguimiento del cliente
// @Tags         customers
// @Produce      json
// @Param        id  path  string  true  "id del cliente"
// @Success      200  {array}  dto.NoteResponse
// @Router       /api/customers/{id}/notes [get]
func (h *CustomerHandler) Notes(c *fiber.Ctx) error {
	out, err := h.followUp.ListNotesByCustomer(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddNote godoc
// @Summary      Agregar nota de seguimiento
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNoteRequest  true  "customer_id, body"
// @Success      201   {object}  dto.NoteResponse
// @Router       /api/notes [post]
func (h *CustomerHandler) AddNote(c *fiber.Ctx) error {
	var in dto.CreateNoteRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.followUp.AddNote(GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
