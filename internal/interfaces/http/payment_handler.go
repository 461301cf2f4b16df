package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cobranzas-pro/internal/application/collections"
	"github.com/tu-usuario/cobranzas-pro/internal/application/dto"
)

// PaymentHandler registro de abonos y promesas de pago.
type PaymentHandler struct {
	payments *collections.PaymentUseCase
	followUp *collections.FollowUpUseCase
}

// NewPaymentHandler construye el handler de pagos.
func NewPaymentHandler(payments *collections.PaymentUseCase, followUp *collections.FollowUpUseCase) *PaymentHandler {
	return &PaymentHandler{payments: payments, followUp: followUp}
}

// Register godoc
// @Summary      Registrar un abono contra una deuda
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterPaymentRequest  true  "debt_id, amount"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      422   {object}  dto.ErrorResponse  "el abono excede el saldo"
// @Router       /api/payments [post]
func (h *PaymentHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterPaymentRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.payments.Register(c.Context(), GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByDebt godoc
// @Summary      Pagos de una deuda
// @Tags         payments
// @Produce      json
// @Param        id  path  string  true  "id de la deuda"
// @Success      200  {array}  dto.PaymentResponse
// @Router       /api/debts/{id}/payments [get]
func (h *PaymentHandler) ListByDebt(c *fiber.Ctx) error {
	out, err := h.payments.ListByDebt(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreatePromise godoc
// @Summary      Registrar promesa de pago
// @Tags         promises
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePromiseRequest  true  "debt_id, promised_amount, promised_date"
// @Success      201   {object}  dto.PromiseResponse
// @Router       /api/promises [post]
func (h *PaymentHandler) CreatePromise(c *fiber.Ctx) error {
	var in dto.CreatePromiseRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.followUp.CreatePromise(GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ResolvePromise godoc
// @Summary      Marcar una promesa como cumplida o rota
// @Tags         promises
// @Produce      json
// @Param        id    path   string  true  "id de la promesa"
// @Param        kept  query  bool    true  "true = cumplida"
// @Success      200   {object}  dto.PromiseResponse
// @Router       /api/promises/{id}/resolve [post]
func (h *PaymentHandler) ResolvePromise(c *fiber.Ctx) error {
	out, err := h.followUp.ResolvePromise(GetCompanyID(c), c.Params("id"), c.QueryBool("kept"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PromisesByDebt godoc
// @Summary      Promesas de pago de una deuda
// @Tags         promises
// @Produce      json
// @Param        id  path  string  true  "id de la deuda"
// @Success      200  {array}  dto.PromiseResponse
// @Router       /api/debts/{id}/promises [get]
func (h *PaymentHandler) PromisesByDebt(c *fiber.Ctx) error {
	out, err := h.followUp.ListPromisesByDebt(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
