package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cobranzas-pro/internal/application/dto"
)

var validate = validator.New()

// parseAndValidate hace BodyParser + validación de struct tags en un paso.
// Devuelve false si ya escribió la respuesta de error.
func parseAndValidate(c *fiber.Ctx, in any) bool {
	if err := c.BodyParser(in); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return false
	}
	if err := validate.Struct(in); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		return false
	}
	return true
}
