package services

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/cookshare/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/models"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/policy"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeIngredientService manages the ingredient list of a recipe.
type RecipeIngredientService struct {
	db *gorm.DB
}

func NewRecipeIngredientService(db *gorm.DB) *RecipeIngredientService {
	return &RecipeIngredientService{db: db}
}

func (s *RecipeIngredientService) List(ctx context.Context, viewer *models.User, recipeID uuid.UUID) ([]dto.RecipeIngredientResponse, error) {
	recipe, err := loadRecipe(ctx, s.db, recipeID)
	if err != nil {
		return nil, err
	}
	if !policy.CanView(viewer, recipe) {
		return nil, ErrForbidden
	}

	out := []dto.RecipeIngredientResponse{}
	err = s.db.WithContext(ctx).
		Model(&models.RecipeIngredient{}).
		Select("recipe_ingredients.recipe_id, recipe_ingredients.ingredient_id, ingredients.name, ingredients.unit, recipe_ingredients.quantity").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("recipe_ingredients.recipe_id = ?", recipeID).
		Order("recipe_ingredients.linked_at, recipe_ingredients.ingredient_id").
		Scan(&out).Error
	if err != nil {
		return nil, classify("list recipe ingredients", err)
	}
	return out, nil
}

// Add links an ingredient. Linking the same ingredient twice is a conflict.
func (s *RecipeIngredientService) Add(ctx context.Context, actor *models.User, recipeID uuid.UUID, req *dto.AddRecipeIngredientRequest) (*models.RecipeIngredient, error) {
	recipe, err := loadRecipe(ctx, s.db, recipeID)
	if err != nil {
		return nil, err
	}
	if !policy.CanModify(actor, recipe) {
		return nil, ErrForbidden
	}

	ingredientID, err := parseID("ingredient_id", req.IngredientID)
	if err != nil {
		return nil, err
	}
	if err := validateQuantity(req.Quantity); err != nil {
		return nil, err
	}
	if err := mustExist(ctx, s.db, &models.Ingredient{}, ingredientID, "ingredient_id"); err != nil {
		return nil, err
	}

	var existing int64
	err = s.db.WithContext(ctx).
		Model(&models.RecipeIngredient{}).
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		Count(&existing).Error
	if err != nil {
		return nil, classify("check recipe ingredient", err)
	}
	if existing > 0 {
		return nil, ErrConflict
	}

	link := models.RecipeIngredient{
		RecipeID:     recipeID,
		IngredientID: ingredientID,
		Quantity:     *req.Quantity,
	}
	if err := s.db.WithContext(ctx).Create(&link).Error; err != nil {
		return nil, classify("add recipe ingredient", err)
	}
	return &link, nil
}

func (s *RecipeIngredientService) Update(ctx context.Context, actor *models.User, recipeID, ingredientID uuid.UUID, req *dto.UpdateRecipeIngredientRequest) (*models.RecipeIngredient, error) {
	recipe, err := loadRecipe(ctx, s.db, recipeID)
	if err != nil {
		return nil, err
	}
	if !policy.CanModify(actor, recipe) {
		return nil, ErrForbidden
	}
	if err := validateQuantity(req.Quantity); err != nil {
		return nil, err
	}

	res := s.db.WithContext(ctx).
		Model(&models.RecipeIngredient{}).
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		Update("quantity", *req.Quantity)
	if err := affected("update recipe ingredient", res); err != nil {
		return nil, err
	}
	return &models.RecipeIngredient{RecipeID: recipeID, IngredientID: ingredientID, Quantity: *req.Quantity}, nil
}

func (s *RecipeIngredientService) Remove(ctx context.Context, actor *models.User, recipeID, ingredientID uuid.UUID) error {
	recipe, err := loadRecipe(ctx, s.db, recipeID)
	if err != nil {
		return err
	}
	if !policy.CanModify(actor, recipe) {
		return ErrForbidden
	}

	res := s.db.WithContext(ctx).
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		Delete(&models.RecipeIngredient{})
	return affected("remove recipe ingredient", res)
}

func validateQuantity(q *float64) error {
	if q == nil {
		return invalid("quantity", "is required")
	}
	if *q <= 0 {
		return invalid("quantity", "must be greater than zero")
	}
	return nil
}
