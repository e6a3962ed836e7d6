package handlers

import (
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/services"
	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the shared category and ingredient lists.
type CatalogHandler struct {
	categories  *services.CategoryService
	ingredients *services.IngredientService
}

func NewCatalogHandler(categories *services.CategoryService, ingredients *services.IngredientService) *CatalogHandler {
	return &CatalogHandler{categories: categories, ingredients: ingredients}
}

func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.categories.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}

func (h *CatalogHandler) GetCategory(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "category")
	if err != nil {
		return respondError(c, err)
	}
	category, err := h.categories.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(category)
}

func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	category, err := h.categories.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "category")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.CategoryRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	category, err := h.categories.Update(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(category)
}

func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "category")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.categories.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Category deleted"})
}

func (h *CatalogHandler) ListIngredients(c *fiber.Ctx) error {
	ingredients, err := h.ingredients.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ingredients)
}

func (h *CatalogHandler) GetIngredient(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "ingredient")
	if err != nil {
		return respondError(c, err)
	}
	ingredient, err := h.ingredients.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ingredient)
}

func (h *CatalogHandler) CreateIngredient(c *fiber.Ctx) error {
	var req dto.CreateIngredientRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	ingredient, err := h.ingredients.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ingredient)
}

func (h *CatalogHandler) UpdateIngredient(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "ingredient")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdateIngredientRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	ingredient, err := h.ingredients.Update(c.UserContext(), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ingredient)
}

func (h *CatalogHandler) DeleteIngredient(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "ingredient")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.ingredients.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Ingredient deleted"})
}
