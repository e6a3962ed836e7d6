package services

import (
	"context"
	"strings"

	"github.com/ahmetcoskunkizilkaya/cookshare/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := s.db.WithContext(ctx).Order("created_at, id").Find(&categories).Error; err != nil {
		return nil, classify("list categories", err)
	}
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, classify("get category", err)
	}
	return &category, nil
}

func (s *CategoryService) Create(ctx context.Context, req *dto.CategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalid("name", "is required")
	}

	category := models.Category{ID: uuid.New(), Name: name}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, classify("create category", err)
	}
	return &category, nil
}

func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req *dto.CategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalid("name", "is required")
	}

	res := s.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Update("name", name)
	if err := affected("update category", res); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete fails with ErrConflict while recipes still use the category.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	var inUse int64
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("category_id = ?", id).Count(&inUse).Error; err != nil {
		return classify("count category recipes", err)
	}
	if inUse > 0 {
		return ErrConflict
	}

	res := s.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	return affected("delete category", res)
}
