package presenter

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// ServerError replies with a generic message; the underlying error is exposed
// only outside production.
func ServerError(c *fiber.Ctx, production bool, err error, message string) error {
	resp := ErrorResponse{Message: message}
	if !production && err != nil {
		resp.Details = err.Error()
	}
	return JSON(c, http.StatusInternalServerError, resp)
}
