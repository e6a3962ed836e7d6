package handlers

import (
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/principal"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/services"
	"github.com/gofiber/fiber/v2"
)

// SessionHandler exposes the principal's own session records.
type SessionHandler struct {
	sessions *services.SessionService
}

func NewSessionHandler(sessions *services.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

func (h *SessionHandler) List(c *fiber.Ctx) error {
	user := principal.User(c)
	sessions, err := h.sessions.ListForUser(c.UserContext(), user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sessions)
}

func (h *SessionHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "session")
	if err != nil {
		return respondError(c, err)
	}
	session, err := h.sessions.GetForUser(c.UserContext(), principal.User(c).ID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(session)
}

func (h *SessionHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "session")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.sessions.CloseForUser(c.UserContext(), principal.User(c).ID, id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Session closed"})
}
