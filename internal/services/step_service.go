package services

import (
	"context"
	"strings"

	"github.com/ahmetcoskunkizilkaya/cookshare/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/models"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/policy"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StepService struct {
	db *gorm.DB
}

func NewStepService(db *gorm.DB) *StepService {
	return &StepService{db: db}
}

// ListByRecipe returns the recipe's steps ordered by step number.
func (s *StepService) ListByRecipe(ctx context.Context, viewer *models.User, recipeID uuid.UUID) ([]models.Step, error) {
	recipe, err := loadRecipe(ctx, s.db, recipeID)
	if err != nil {
		return nil, err
	}
	if !policy.CanView(viewer, recipe) {
		return nil, ErrForbidden
	}

	steps := []models.Step{}
	if err := s.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Order("step_number, id").Find(&steps).Error; err != nil {
		return nil, classify("list steps", err)
	}
	return steps, nil
}

func (s *StepService) Get(ctx context.Context, viewer *models.User, id uuid.UUID) (*models.Step, error) {
	step, recipe, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanView(viewer, recipe) {
		return nil, ErrForbidden
	}
	return step, nil
}

func (s *StepService) Create(ctx context.Context, actor *models.User, recipeID uuid.UUID, req *dto.CreateStepRequest) (*models.Step, error) {
	recipe, err := loadRecipe(ctx, s.db, recipeID)
	if err != nil {
		return nil, err
	}
	if !policy.CanModify(actor, recipe) {
		return nil, ErrForbidden
	}
	if req.StepNumber == nil {
		return nil, invalid("step_number", "is required")
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, invalid("description", "is required")
	}

	step := models.Step{
		ID:          uuid.New(),
		RecipeID:    recipeID,
		StepNumber:  *req.StepNumber,
		Description: description,
	}
	if err := s.db.WithContext(ctx).Create(&step).Error; err != nil {
		return nil, classify("create step", err)
	}
	return &step, nil
}

func (s *StepService) Update(ctx context.Context, actor *models.User, id uuid.UUID, req *dto.UpdateStepRequest) (*models.Step, error) {
	step, recipe, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanModify(actor, recipe) {
		return nil, ErrForbidden
	}

	updates := map[string]interface{}{}
	if req.StepNumber != nil {
		updates["step_number"] = *req.StepNumber
		step.StepNumber = *req.StepNumber
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			return nil, invalid("description", "must not be empty")
		}
		updates["description"] = description
		step.Description = description
	}
	if len(updates) == 0 {
		return step, nil
	}

	res := s.db.WithContext(ctx).Model(&models.Step{}).Where("id = ?", id).Updates(updates)
	if err := affected("update step", res); err != nil {
		return nil, err
	}
	return step, nil
}

func (s *StepService) Delete(ctx context.Context, actor *models.User, id uuid.UUID) error {
	_, recipe, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanModify(actor, recipe) {
		return ErrForbidden
	}
	res := s.db.WithContext(ctx).Delete(&models.Step{}, "id = ?", id)
	return affected("delete step", res)
}

func (s *StepService) load(ctx context.Context, id uuid.UUID) (*models.Step, *models.Recipe, error) {
	var step models.Step
	if err := s.db.WithContext(ctx).First(&step, "id = ?", id).Error; err != nil {
		return nil, nil, classify("get step", err)
	}
	recipe, err := loadRecipe(ctx, s.db, step.RecipeID)
	if err != nil {
		return nil, nil, err
	}
	return &step, recipe, nil
}
