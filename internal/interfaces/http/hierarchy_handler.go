package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cobranzas-pro/internal/application/dto"
	"github.com/tu-usuario/cobranzas-pro/internal/application/hierarchy"
)

// HierarchyHandler operaciones sobre el bosque de reporte: reasignación de
// subárboles, reparación de self-loops y transferencia de cartera.
type HierarchyHandler struct {
	svc *hierarchy.Service
}

// NewHierarchyHandler construye el handler de jerarquía.
func NewHierarchyHandler(svc *hierarchy.Service) *HierarchyHandler {
	return &HierarchyHandler{svc: svc}
}

// AssignManager godoc
// @Summary      Reasignar usuarios (y sus subárboles) a un gerente
// @Tags         hierarchy
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AssignManagerRequest  true  "manager_id y user_ids semilla"
// @Success      200   {object}  dto.AssignManagerResponse
// @Failure      409   {object}  dto.ErrorResponse  "la asignación crearía un ciclo"
// @Router       /api/users/assign-manager [post]
func (h *HierarchyHandler) AssignManager(c *fiber.Ctx) error {
	var in dto.AssignManagerRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.svc.AssignManager(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Repair godoc
// @Summary      Limpiar self-loops de manager_id (idempotente)
// @Tags         hierarchy
// @Produce      json
// @Success      200  {object}  dto.RepairResponse
// @Router       /api/users/repair-hierarchy [post]
func (h *HierarchyHandler) Repair(c *fiber.Ctx) error {
	out, err := h.svc.Repair(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ReassignOwnership godoc
// @Summary      Transferir la cartera de un vendedor a otro (deudas + clientes)
// @Tags         hierarchy
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReassignOwnershipRequest  true  "from_seller_id, to_seller_id"
// @Success      200   {object}  dto.ReassignOwnershipResponse
// @Failure      400   {object}  dto.ErrorResponse  "origen y destino iguales"
// @Router       /api/debts/reassign-seller [post]
func (h *HierarchyHandler) ReassignOwnership(c *fiber.Ctx) error {
	var in dto.ReassignOwnershipRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.svc.ReassignOwnership(GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
