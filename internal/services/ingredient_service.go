package services

import (
	"context"
	"strings"

	"github.com/ahmetcoskunkizilkaya/cookshare/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

func (s *IngredientService) List(ctx context.Context) ([]models.Ingredient, error) {
	ingredients := []models.Ingredient{}
	if err := s.db.WithContext(ctx).Order("created_at, id").Find(&ingredients).Error; err != nil {
		return nil, classify("list ingredients", err)
	}
	return ingredients, nil
}

func (s *IngredientService) Get(ctx context.Context, id uuid.UUID) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, "id = ?", id).Error; err != nil {
		return nil, classify("get ingredient", err)
	}
	return &ingredient, nil
}

func (s *IngredientService) Create(ctx context.Context, req *dto.CreateIngredientRequest) (*models.Ingredient, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalid("name", "is required")
	}
	unit := strings.TrimSpace(req.Unit)
	if unit == "" {
		return nil, invalid("unit", "is required")
	}

	ingredient := models.Ingredient{ID: uuid.New(), Name: name, Unit: unit}
	if err := s.db.WithContext(ctx).Create(&ingredient).Error; err != nil {
		return nil, classify("create ingredient", err)
	}
	return &ingredient, nil
}

func (s *IngredientService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateIngredientRequest) (*models.Ingredient, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, invalid("name", "must not be empty")
		}
		updates["name"] = name
	}
	if req.Unit != nil {
		unit := strings.TrimSpace(*req.Unit)
		if unit == "" {
			return nil, invalid("unit", "must not be empty")
		}
		updates["unit"] = unit
	}
	if len(updates) == 0 {
		return s.Get(ctx, id)
	}

	res := s.db.WithContext(ctx).Model(&models.Ingredient{}).Where("id = ?", id).Updates(updates)
	if err := affected("update ingredient", res); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes the ingredient and, through the cascade, every recipe link
// that used it.
func (s *IngredientService) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.Ingredient{}, "id = ?", id)
	return affected("delete ingredient", res)
}
