package middleware

import (
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/principal"
	"github.com/gofiber/fiber/v2"
)

// SelfOnly lets a request through only when the path parameter param is the
// principal's own user id.
func SelfOnly(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := principal.User(c)
		if user == nil {
			return unauthorized(c, "Unauthorized")
		}
		if c.Params(param) != user.ID.String() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "You can only manage your own account",
			})
		}
		return c.Next()
	}
}
