package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cobranzas-pro/internal/application/collections"
	"github.com/tu-usuario/cobranzas-pro/internal/application/dto"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/repository"
)

// DebtHandler gestión de cuentas por cobrar e import masivo.
type DebtHandler struct {
	uc       *collections.DebtUseCase
	importUC *collections.ImportUseCase
}

// NewDebtHandler construye el handler de deudas.
func NewDebtHandler(uc *collections.DebtUseCase, importUC *collections.ImportUseCase) *DebtHandler {
	return &DebtHandler{uc: uc, importUC: importUC}
}

// Create godoc
// @Summary      Registrar una deuda
// @Tags         debts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDebtRequest  true  "datos de la deuda"
// @Success      201   {object}  dto.DebtResponse
// @Router       /api/debts [post]
func (h *DebtHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDebtRequest
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
// @Summary      Listar deudas (filtros: customer_id, seller_id, status, currency)
// @Tags         debts
// @Produce      json
// @Success      200  {array}  dto.DebtResponse
// @Router       /api/debts [get]
func (h *DebtHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	filter := repository.DebtFilter{
		CustomerID: c.Query("customer_id"),
		SellerID:   c.Query("seller_id"),
		Status:     c.Query("status"),
		Currency:   c.Query("currency"),
	}
	out, err := h.uc.List(GetCompanyID(c), filter, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener una deuda
// @Tags         debts
// @Produce      json
// @Param        id  path  string  true  "id de la deuda"
// @Success      200  {object}  dto.DebtResponse
// @Router       /api/debts/{id} [get]
func (h *DebtHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar una deuda (patch parcial)
// @Tags         debts
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "id de la deuda"
// @Param        body  body  dto.UpdateDebtRequest true  "campos a cambiar"
// @Success      200   {object}  dto.DebtResponse
// @Router       /api/debts/{id} [put]
func (h *DebtHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDebtRequest
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
// @Summary      Borrar una deuda
// @Tags         debts
// @Param        id  path  string  true  "id de la deuda"
// @Success      204
// @Router       /api/debts/{id} [delete]
func (h *DebtHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCompanyID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Import godoc
// @Summary      Import masivo de deudas (resultado por fila)
// @Tags         debts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkDebtRequest  true  "items con moneda/fecha crudas"
// @Success      200   {array}  dto.BulkDebtResult
// @Router       /api/debts/bulk [post]
func (h *DebtHandler) Import(c *fiber.Ctx) error {
	var in dto.BulkDebtRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.importUC.Import(GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
