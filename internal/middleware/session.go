package middleware

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/cookshare/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/models"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/principal"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SessionChecker interface {
	Active(ctx context.Context, sessionID uuid.UUID) (*models.Session, error)
}

type PrincipalLoader interface {
	Principal(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// SessionRequired runs after the JWT middleware. When a token was verified,
// the session it names must still be active and belong to the token's
// subject; the user is then stored as the request principal. Requests
// without a token pass through as anonymous.
func SessionRequired(sessions SessionChecker, users PrincipalLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, sessionID, err := principal.Claims(c)
		if errors.Is(err, principal.ErrNoToken) {
			return c.Next()
		}
		if err != nil {
			return unauthorized(c, "Unauthorized: invalid token claims")
		}

		ctx := c.UserContext()
		session, err := sessions.Active(ctx, sessionID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return unauthorized(c, "Unauthorized: session has ended")
			}
			slog.Error("session lookup failed", "session_id", sessionID, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}
		if session.UserID != userID {
			return unauthorized(c, "Unauthorized: session does not match token")
		}

		user, err := users.Principal(ctx, userID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return unauthorized(c, "Unauthorized: user no longer exists")
			}
			slog.Error("principal lookup failed", "user_id", userID, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}

		principal.Set(c, user, sessionID)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: msg,
	})
}
