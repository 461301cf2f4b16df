package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cobranzas-pro/internal/application/dto"
	"github.com/tu-usuario/cobranzas-pro/internal/application/usecase"
)

// UserHandler gestión del personal: CRUD, alta masiva y export.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create godoc
// @Summary      Crear usuario (contraseña temporal en la respuesta)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "email, full_name, role"
// @Success      201   {object}  dto.CreatedUserResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Create(GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// BulkCreate godoc
// @Summary      Alta masiva de usuarios (resultado por fila)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkUserRequest  true  "items"
// @Success      200   {array}  dto.BulkUserResult
// @Router       /api/users/bulk [post]
func (h *UserHandler) BulkCreate(c *fiber.Ctx) error {
	var in dto.BulkUserRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.BulkCreate(GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar el personal de la empresa
// @Tags         users
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener un usuario
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "id del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar un usuario (patch parcial)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "id del usuario"
// @Param        body  body  dto.UpdateUserRequest true  "campos a cambiar"
// @Success      200   {object}  dto.UserResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
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
// @Summary      Borrar un usuario (desengancha a sus subordinados antes)
// @Tags         users
// @Param        id  path  string  true  "id del usuario"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCompanyID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Export godoc
// @Summary      Exportar el personal (con ?rotate=true genera contraseñas nuevas)
// @Tags         users
// @Produce      json
// @Param        rotate  query  bool  false  "rotar contraseñas temporales"
// @Success      200  {array}  dto.UserExportRow
// @Router       /api/users/export [get]
func (h *UserHandler) Export(c *fiber.Ctx) error {
	out, err := h.uc.Export(GetCompanyID(c), c.QueryBool("rotate"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
