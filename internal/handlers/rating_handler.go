package handlers

import (
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/principal"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/services"
	"github.com/gofiber/fiber/v2"
)

type RatingHandler struct {
	ratings *services.RatingService
}

func NewRatingHandler(ratings *services.RatingService) *RatingHandler {
	return &RatingHandler{ratings: ratings}
}

func (h *RatingHandler) ListByRecipe(c *fiber.Ctx) error {
	recipeID, err := pathID(c, "id", "recipe")
	if err != nil {
		return respondError(c, err)
	}
	ratings, err := h.ratings.ListByRecipe(c.UserContext(), principal.User(c), recipeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ratings)
}

func (h *RatingHandler) Create(c *fiber.Ctx) error {
	recipeID, err := pathID(c, "id", "recipe")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.RatingRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	rating, err := h.ratings.Create(c.UserContext(), principal.User(c), recipeID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rating)
}

func (h *RatingHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "rating")
	if err != nil {
		return respondError(c, err)
	}
	rating, err := h.ratings.Get(c.UserContext(), principal.User(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rating)
}

func (h *RatingHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "rating")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.RatingRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	rating, err := h.ratings.Update(c.UserContext(), principal.User(c), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rating)
}

func (h *RatingHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "rating")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.ratings.Delete(c.UserContext(), principal.User(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Rating deleted"})
}
