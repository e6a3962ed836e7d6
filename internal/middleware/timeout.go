package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// DBWaitTimeout puts a deadline on the request context so a request waiting
// for a pooled connection gives up after d. Zero disables the deadline.
func DBWaitTimeout(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if d <= 0 {
			return c.Next()
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), d)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
