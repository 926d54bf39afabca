package utils

import (
	"Backend-Mergington-API/src/models"

	"github.com/gofiber/fiber/v2"
)

// HandleError writes the standard {"detail": ...} error payload.
func HandleError(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Detail: detail,
	})
}
