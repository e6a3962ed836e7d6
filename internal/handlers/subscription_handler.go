package handlers

import (
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/principal"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/services"
	"github.com/gofiber/fiber/v2"
)

// SubscriptionHandler manages the principal's own subscription periods.
type SubscriptionHandler struct {
	subscriptions *services.SubscriptionService
}

func NewSubscriptionHandler(subscriptions *services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptions: subscriptions}
}

func (h *SubscriptionHandler) List(c *fiber.Ctx) error {
	subs, err := h.subscriptions.List(c.UserContext(), principal.User(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(subs)
}

func (h *SubscriptionHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "subscription")
	if err != nil {
		return respondError(c, err)
	}
	sub, err := h.subscriptions.Get(c.UserContext(), principal.User(c).ID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sub)
}

func (h *SubscriptionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSubscriptionRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	sub, err := h.subscriptions.Create(c.UserContext(), principal.User(c).ID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sub)
}

func (h *SubscriptionHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "subscription")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdateSubscriptionRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	sub, err := h.subscriptions.Update(c.UserContext(), principal.User(c).ID, id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sub)
}

func (h *SubscriptionHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "subscription")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.subscriptions.Delete(c.UserContext(), principal.User(c).ID, id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Subscription deleted"})
}
