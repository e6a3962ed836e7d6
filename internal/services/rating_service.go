package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/cookshare/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/models"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/policy"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RatingService struct {
	db     *gorm.DB
	filter *ContentFilter
}

func NewRatingService(db *gorm.DB, filter *ContentFilter) *RatingService {
	return &RatingService{db: db, filter: filter}
}

func (s *RatingService) ListByRecipe(ctx context.Context, viewer *models.User, recipeID uuid.UUID) ([]models.Rating, error) {
	recipe, err := loadRecipe(ctx, s.db, recipeID)
	if err != nil {
		return nil, err
	}
	if !policy.CanView(viewer, recipe) {
		return nil, ErrForbidden
	}

	ratings := []models.Rating{}
	if err := s.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Order("rated_at, id").Find(&ratings).Error; err != nil {
		return nil, classify("list ratings", err)
	}
	return ratings, nil
}

func (s *RatingService) Get(ctx context.Context, viewer *models.User, id uuid.UUID) (*models.Rating, error) {
	rating, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	recipe, err := loadRecipe(ctx, s.db, rating.RecipeID)
	if err != nil {
		return nil, err
	}
	if !policy.CanView(viewer, recipe) {
		return nil, ErrForbidden
	}
	return rating, nil
}

// Create records actor's score for a recipe they can see. The score is
// checked before anything is written.
func (s *RatingService) Create(ctx context.Context, actor *models.User, recipeID uuid.UUID, req *dto.RatingRequest) (*models.Rating, error) {
	if actor == nil {
		return nil, ErrForbidden
	}
	if req.Score == nil {
		return nil, invalid("score", "is required")
	}
	if err := validateScore(*req.Score); err != nil {
		return nil, err
	}
	comment, err := s.comment(req.Comment)
	if err != nil {
		return nil, err
	}

	recipe, err := loadRecipe(ctx, s.db, recipeID)
	if err != nil {
		return nil, err
	}
	if !policy.CanView(actor, recipe) {
		return nil, ErrForbidden
	}

	rating := models.Rating{
		ID:       uuid.New(),
		RecipeID: recipeID,
		UserID:   actor.ID,
		Score:    *req.Score,
		Comment:  comment,
	}
	if err := s.db.WithContext(ctx).Create(&rating).Error; err != nil {
		return nil, classify("create rating", err)
	}
	return &rating, nil
}

// Update and Delete are limited to the user who wrote the rating.
func (s *RatingService) Update(ctx context.Context, actor *models.User, id uuid.UUID, req *dto.RatingRequest) (*models.Rating, error) {
	rating, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor == nil || rating.UserID != actor.ID {
		return nil, ErrForbidden
	}

	updates := map[string]interface{}{}
	if req.Score != nil {
		if err := validateScore(*req.Score); err != nil {
			return nil, err
		}
		updates["score"] = *req.Score
		rating.Score = *req.Score
	}
	if req.Comment != nil {
		comment, err := s.comment(req.Comment)
		if err != nil {
			return nil, err
		}
		updates["comment"] = comment
		rating.Comment = comment
	}
	if len(updates) == 0 {
		return rating, nil
	}

	res := s.db.WithContext(ctx).Model(&models.Rating{}).Where("id = ?", id).Updates(updates)
	if err := affected("update rating", res); err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *RatingService) Delete(ctx context.Context, actor *models.User, id uuid.UUID) error {
	rating, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if actor == nil || rating.UserID != actor.ID {
		return ErrForbidden
	}
	res := s.db.WithContext(ctx).Delete(&models.Rating{}, "id = ?", id)
	return affected("delete rating", res)
}

func (s *RatingService) find(ctx context.Context, id uuid.UUID) (*models.Rating, error) {
	var rating models.Rating
	if err := s.db.WithContext(ctx).First(&rating, "id = ?", id).Error; err != nil {
		return nil, classify("get rating", err)
	}
	return &rating, nil
}

// comment trims the optional comment and runs it through the content filter.
// An empty comment is stored as NULL.
func (s *RatingService) comment(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	c := strings.TrimSpace(*raw)
	if c == "" {
		return nil, nil
	}
	if s.filter != nil {
		if err := s.filter.Check("comment", c); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

func validateScore(score int) error {
	if score < models.MinScore || score > models.MaxScore {
		return invalid("score", fmt.Sprintf("must be between %d and %d", models.MinScore, models.MaxScore))
	}
	return nil
}
