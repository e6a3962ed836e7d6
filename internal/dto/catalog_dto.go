package dto

import (
	"github.com/google/uuid"
)

type CategoryRequest struct {
	Name string `json:"name"`
}

type CreateIngredientRequest struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}

type UpdateIngredientRequest struct {
	Name *string `json:"name"`
	Unit *string `json:"unit"`
}

type AddCollaboratorRequest struct {
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	CanModify bool   `json:"can_modify"`
}

type UpdateCollaboratorRequest struct {
	Role      *string `json:"role"`
	CanModify *bool   `json:"can_modify"`
}

type AddRecipeIngredientRequest struct {
	IngredientID string   `json:"ingredient_id"`
	Quantity     *float64 `json:"quantity"`
}

type UpdateRecipeIngredientRequest struct {
	Quantity *float64 `json:"quantity"`
}

// RecipeIngredientResponse is a recipe-ingredient link joined with the
// ingredient's name and unit.
type RecipeIngredientResponse struct {
	RecipeID     uuid.UUID `json:"recipe_id"`
	IngredientID uuid.UUID `json:"ingredient_id"`
	Name         string    `json:"name"`
	Unit         string    `json:"unit"`
	Quantity     float64   `json:"quantity"`
}

type CreateStepRequest struct {
	StepNumber  *int   `json:"step_number"`
	Description string `json:"description"`
}

type UpdateStepRequest struct {
	StepNumber  *int    `json:"step_number"`
	Description *string `json:"description"`
}

type RatingRequest struct {
	Score   *int    `json:"score"`
	Comment *string `json:"comment"`
}
