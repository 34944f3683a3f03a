package middleware

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/contactbook/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// MethodNotAllowed rejects the request with 405 and an Allow header
// listing the supported methods. Register it with All() after the
// real method handlers of the same path.
func MethodNotAllowed(methods ...string) fiber.Handler {
	allow := strings.Join(methods, ", ")
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAllow, allow)
		return c.Status(fiber.StatusMethodNotAllowed).JSON(dto.ErrorResponse{
			Error:   true,
			Message: "Method " + c.Method() + " not allowed",
		})
	}
}
