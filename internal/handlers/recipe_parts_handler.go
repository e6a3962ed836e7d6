package handlers

import (
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/principal"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/services"
	"github.com/gofiber/fiber/v2"
)

// RecipePartsHandler serves the collections nested under a recipe:
// collaborators, ingredient links and steps.
type RecipePartsHandler struct {
	collaborators *services.CollaboratorService
	ingredients   *services.RecipeIngredientService
	steps         *services.StepService
}

func NewRecipePartsHandler(
	collaborators *services.CollaboratorService,
	ingredients *services.RecipeIngredientService,
	steps *services.StepService,
) *RecipePartsHandler {
	return &RecipePartsHandler{collaborators: collaborators, ingredients: ingredients, steps: steps}
}

func (h *RecipePartsHandler) ListCollaborators(c *fiber.Ctx) error {
	recipeID, err := pathID(c, "id", "recipe")
	if err != nil {
		return respondError(c, err)
	}
	links, err := h.collaborators.List(c.UserContext(), principal.User(c), recipeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(links)
}

func (h *RecipePartsHandler) AddCollaborator(c *fiber.Ctx) error {
	recipeID, err := pathID(c, "id", "recipe")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.AddCollaboratorRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	link, err := h.collaborators.Add(c.UserContext(), principal.User(c), recipeID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

func (h *RecipePartsHandler) UpdateCollaborator(c *fiber.Ctx) error {
	recipeID, err := pathID(c, "id", "recipe")
	if err != nil {
		return respondError(c, err)
	}
	userID, err := pathID(c, "user_id", "user")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdateCollaboratorRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	link, err := h.collaborators.Update(c.UserContext(), principal.User(c), recipeID, userID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(link)
}

func (h *RecipePartsHandler) RemoveCollaborator(c *fiber.Ctx) error {
	recipeID, err := pathID(c, "id", "recipe")
	if err != nil {
		return respondError(c, err)
	}
	userID, err := pathID(c, "user_id", "user")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.collaborators.Remove(c.UserContext(), principal.User(c), recipeID, userID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Collaborator removed"})
}

func (h *RecipePartsHandler) ListIngredients(c *fiber.Ctx) error {
	recipeID, err := pathID(c, "id", "recipe")
	if err != nil {
		return respondError(c, err)
	}
	items, err := h.ingredients.List(c.UserContext(), principal.User(c), recipeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

func (h *RecipePartsHandler) AddIngredient(c *fiber.Ctx) error {
	recipeID, err := pathID(c, "id", "recipe")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.AddRecipeIngredientRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	link, err := h.ingredients.Add(c.UserContext(), principal.User(c), recipeID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

func (h *RecipePartsHandler) UpdateIngredient(c *fiber.Ctx) error {
	recipeID, err := pathID(c, "id", "recipe")
	if err != nil {
		return respondError(c, err)
	}
	ingredientID, err := pathID(c, "ingredient_id", "ingredient")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdateRecipeIngredientRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	link, err := h.ingredients.Update(c.UserContext(), principal.User(c), recipeID, ingredientID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(link)
}

func (h *RecipePartsHandler) RemoveIngredient(c *fiber.Ctx) error {
	recipeID, err := pathID(c, "id", "recipe")
	if err != nil {
		return respondError(c, err)
	}
	ingredientID, err := pathID(c, "ingredient_id", "ingredient")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.ingredients.Remove(c.UserContext(), principal.User(c), recipeID, ingredientID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Ingredient removed from recipe"})
}

func (h *RecipePartsHandler) ListSteps(c *fiber.Ctx) error {
	recipeID, err := pathID(c, "id", "recipe")
	if err != nil {
		return respondError(c, err)
	}
	steps, err := h.steps.ListByRecipe(c.UserContext(), principal.User(c), recipeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(steps)
}

func (h *RecipePartsHandler) CreateStep(c *fiber.Ctx) error {
	recipeID, err := pathID(c, "id", "recipe")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.CreateStepRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	step, err := h.steps.Create(c.UserContext(), principal.User(c), recipeID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(step)
}

func (h *RecipePartsHandler) GetStep(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "step")
	if err != nil {
		return respondError(c, err)
	}
	step, err := h.steps.Get(c.UserContext(), principal.User(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(step)
}

func (h *RecipePartsHandler) UpdateStep(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "step")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdateStepRequest
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}
	step, err := h.steps.Update(c.UserContext(), principal.User(c), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(step)
}

func (h *RecipePartsHandler) DeleteStep(c *fiber.Ctx) error {
	id, err := pathID(c, "id", "step")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.steps.Delete(c.UserContext(), principal.User(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Step deleted"})
}
