// Package principal carries the authenticated user of a request through the
// fiber context.
package principal

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/cookshare/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenKey is where the JWT middleware stores the verified token.
const TokenKey = "user"

const (
	userKey    = "principal"
	sessionKey = "session_id"
)

var ErrNoToken = errors.New("no bearer token in context")

// Claims returns the user and session ids of the verified bearer token.
func Claims(c *fiber.Ctx) (userID, sessionID uuid.UUID, err error) {
	token, ok := c.Locals(TokenKey).(*jwt.Token)
	if !ok || token == nil {
		return uuid.Nil, uuid.Nil, ErrNoToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, uuid.Nil, errors.New("invalid claims")
	}

	sub, _ := claims["sub"].(string)
	sid, _ := claims["sid"].(string)
	if userID, err = uuid.Parse(sub); err != nil {
		return uuid.Nil, uuid.Nil, errors.New("missing sub claim")
	}
	if sessionID, err = uuid.Parse(sid); err != nil {
		return uuid.Nil, uuid.Nil, errors.New("missing sid claim")
	}
	return userID, sessionID, nil
}

func Set(c *fiber.Ctx, user *models.User, sessionID uuid.UUID) {
	c.Locals(userKey, user)
	c.Locals(sessionKey, sessionID)
}

// User returns the request principal, or nil for an anonymous caller.
func User(c *fiber.Ctx) *models.User {
	if u, ok := c.Locals(userKey).(*models.User); ok {
		return u
	}
	return nil
}

func SessionID(c *fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals(sessionKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
