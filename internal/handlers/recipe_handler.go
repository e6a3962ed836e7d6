package handlers

import (
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/principal"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/services"
	"github.com/gofiber/fiber/v2"
)

type RecipeHandler struct {
	recipes *services.RecipeService
}

func NewRecipeHandler(recipes *services.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

func (h *RecipeHandler) List(c *fiber.Ctx) error {
	recipes, err := h.recipes.List(c.UserContext(), principal.User(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(recipes)
}

func (h *RecipeHandler) Search(c *fiber.Ctx) error {
	recipes, err := h.recipes.Search(c.UserContext(), principal.User(c), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(recipes)
}

func (h *RecipeHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "recipe")
	if err != nil {
		return respondError(c, err)
	}
	recipe, err := h.recipes.Get(c.UserContext(), principal.User(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(recipe)
}

func (h *RecipeHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateRecipeRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	recipe, err := h.recipes.Create(c.UserContext(), principal.User(c), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(recipe)
}

func (h *RecipeHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "recipe")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdateRecipeRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	recipe, err := h.recipes.Update(c.UserContext(), principal.User(c), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(recipe)
}

func (h *RecipeHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "recipe")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.recipes.Delete(c.UserContext(), principal.User(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Recipe deleted"})
}
