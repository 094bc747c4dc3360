// Package presenter keeps the HTTP response shapes in one place so every
// handler reports errors the same way.
package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Message string `json:"message"`
}

// JSON writes v with the given status.
func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

// Error writes a uniform error body with the given status.
func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}
