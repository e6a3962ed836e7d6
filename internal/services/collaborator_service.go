package services

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/cookshare/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/models"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/policy"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CollaboratorService manages secondary authors of a recipe.
type CollaboratorService struct {
	db *gorm.DB
}

func NewCollaboratorService(db *gorm.DB) *CollaboratorService {
	return &CollaboratorService{db: db}
}

func (s *CollaboratorService) List(ctx context.Context, viewer *models.User, recipeID uuid.UUID) ([]models.SecondaryAuthor, error) {
	recipe, err := loadRecipe(ctx, s.db, recipeID)
	if err != nil {
		return nil, err
	}
	if !policy.CanView(viewer, recipe) {
		return nil, ErrForbidden
	}
	if recipe.Collaborators == nil {
		return []models.SecondaryAuthor{}, nil
	}
	return recipe.Collaborators, nil
}

// Add links a user to the recipe. A second link for the same user is a
// conflict and leaves the first one unchanged.
func (s *CollaboratorService) Add(ctx context.Context, actor *models.User, recipeID uuid.UUID, req *dto.AddCollaboratorRequest) (*models.SecondaryAuthor, error) {
	recipe, err := loadRecipe(ctx, s.db, recipeID)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageCollaborators(actor, recipe) {
		return nil, ErrForbidden
	}

	userID, err := parseID("user_id", req.UserID)
	if err != nil {
		return nil, err
	}
	role := models.RoleCollaborator
	if req.Role != "" {
		role = models.CollaboratorRole(req.Role)
		if !role.Valid() {
			return nil, invalid("role", "must be collaborator or guest")
		}
	}
	if userID == recipe.AuthorID {
		return nil, invalid("user_id", "is already the primary author")
	}
	if err := mustExist(ctx, s.db, &models.User{}, userID, "user_id"); err != nil {
		return nil, err
	}
	if _, ok := recipe.Collaborator(userID); ok {
		return nil, ErrConflict
	}

	link := models.SecondaryAuthor{
		RecipeID:  recipeID,
		UserID:    userID,
		Role:      role,
		CanModify: req.CanModify,
	}
	if err := s.db.WithContext(ctx).Create(&link).Error; err != nil {
		return nil, classify("add collaborator", err)
	}
	return &link, nil
}

func (s *CollaboratorService) Update(ctx context.Context, actor *models.User, recipeID, userID uuid.UUID, req *dto.UpdateCollaboratorRequest) (*models.SecondaryAuthor, error) {
	recipe, err := loadRecipe(ctx, s.db, recipeID)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageCollaborators(actor, recipe) {
		return nil, ErrForbidden
	}
	link, ok := recipe.Collaborator(userID)
	if !ok {
		return nil, ErrNotFound
	}

	updates := map[string]interface{}{}
	if req.Role != nil {
		role := models.CollaboratorRole(*req.Role)
		if !role.Valid() {
			return nil, invalid("role", "must be collaborator or guest")
		}
		updates["role"] = role
		link.Role = role
	}
	if req.CanModify != nil {
		updates["can_modify"] = *req.CanModify
		link.CanModify = *req.CanModify
	}
	if len(updates) == 0 {
		return &link, nil
	}

	res := s.db.WithContext(ctx).
		Model(&models.SecondaryAuthor{}).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Updates(updates)
	if err := affected("update collaborator", res); err != nil {
		return nil, err
	}
	return &link, nil
}

func (s *CollaboratorService) Remove(ctx context.Context, actor *models.User, recipeID, userID uuid.UUID) error {
	recipe, err := loadRecipe(ctx, s.db, recipeID)
	if err != nil {
		return err
	}
	if !policy.CanManageCollaborators(actor, recipe) {
		return ErrForbidden
	}

	res := s.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Delete(&models.SecondaryAuthor{})
	return affected("remove collaborator", res)
}
