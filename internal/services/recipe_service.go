package services

import (
	"context"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/cookshare/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/models"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/policy"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// likeEscaper makes LIKE wildcards in a search term match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// List returns every recipe the viewer may see, oldest first.
func (s *RecipeService) List(ctx context.Context, viewer *models.User) ([]dto.RecipeResponse, error) {
	var recipes []models.Recipe
	if err := projection(s.db.WithContext(ctx)).Order("recipes.created_at, recipes.id").Find(&recipes).Error; err != nil {
		return nil, classify("list recipes", err)
	}
	return s.visible(ctx, viewer, recipes)
}

// Search matches term case-insensitively against recipe titles and the
// names of linked ingredients. Each recipe appears at most once.
func (s *RecipeService) Search(ctx context.Context, viewer *models.User, term string) ([]dto.RecipeResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, invalid("q", "is required")
	}
	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"

	db := s.db.WithContext(ctx)
	byIngredient := db.Model(&models.RecipeIngredient{}).
		Select("recipe_ingredients.recipe_id").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where(`LOWER(ingredients.name) LIKE ? ESCAPE '\'`, pattern)

	var recipes []models.Recipe
	err := projection(db).
		Where(`LOWER(recipes.title) LIKE ? ESCAPE '\' OR recipes.id IN (?)`, pattern, byIngredient).
		Order("recipes.created_at, recipes.id").
		Find(&recipes).Error
	if err != nil {
		return nil, classify("search recipes", err)
	}
	return s.visible(ctx, viewer, recipes)
}

func (s *RecipeService) Get(ctx context.Context, viewer *models.User, id uuid.UUID) (*dto.RecipeResponse, error) {
	recipe, err := loadRecipe(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanView(viewer, recipe) {
		return nil, ErrForbidden
	}
	resp := dto.NewRecipeResponse(recipe)
	return &resp, nil
}

// Create stores a new recipe whose primary author is author.
func (s *RecipeService) Create(ctx context.Context, author *models.User, req *dto.CreateRecipeRequest) (*dto.RecipeResponse, error) {
	if author == nil {
		return nil, ErrForbidden
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, invalid("title", "is required")
	}
	if req.PrepTime == nil {
		return nil, invalid("prep_time", "is required")
	}
	if *req.PrepTime <= 0 {
		return nil, invalid("prep_time", "must be a positive number of minutes")
	}
	if req.Cost != nil && *req.Cost < 0 {
		return nil, invalid("cost", "must not be negative")
	}
	categoryID, err := parseID("category_id", req.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := mustExist(ctx, s.db, &models.Category{}, categoryID, "category_id"); err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		ID:          uuid.New(),
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		PrepTime:    *req.PrepTime,
		Cost:        req.Cost,
		IsPublic:    req.IsPublic,
		IsPremium:   req.IsPremium,
		CategoryID:  categoryID,
		AuthorID:    author.ID,
	}
	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, classify("create recipe", err)
	}

	created, err := loadRecipe(ctx, s.db, recipe.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewRecipeResponse(created)
	return &resp, nil
}

// Update is allowed for the primary author and collaborators with
// can_modify. Every successful update moves modified_at forward.
func (s *RecipeService) Update(ctx context.Context, actor *models.User, id uuid.UUID, req *dto.UpdateRecipeRequest) (*dto.RecipeResponse, error) {
	recipe, err := loadRecipe(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanModify(actor, recipe) {
		return nil, ErrForbidden
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, invalid("title", "must not be empty")
		}
		updates["title"] = title
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.PrepTime != nil {
		if *req.PrepTime <= 0 {
			return nil, invalid("prep_time", "must be a positive number of minutes")
		}
		updates["prep_time"] = *req.PrepTime
	}
	if req.Cost != nil {
		if *req.Cost < 0 {
			return nil, invalid("cost", "must not be negative")
		}
		updates["cost"] = *req.Cost
	}
	if req.IsPublic != nil {
		updates["is_public"] = *req.IsPublic
	}
	if req.IsPremium != nil {
		updates["is_premium"] = *req.IsPremium
	}
	if req.CategoryID != nil {
		categoryID, err := parseID("category_id", *req.CategoryID)
		if err != nil {
			return nil, err
		}
		if err := mustExist(ctx, s.db, &models.Category{}, categoryID, "category_id"); err != nil {
			return nil, err
		}
		updates["category_id"] = categoryID
	}

	if len(updates) == 0 {
		resp := dto.NewRecipeResponse(recipe)
		return &resp, nil
	}
	updates["modified_at"] = nextModifiedAt(recipe.ModifiedAt)

	res := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", id).Updates(updates)
	if err := affected("update recipe", res); err != nil {
		return nil, err
	}

	updated, err := loadRecipe(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewRecipeResponse(updated)
	return &resp, nil
}

// Delete is reserved to the primary author. Steps, ratings, ingredient links
// and collaborator links cascade.
func (s *RecipeService) Delete(ctx context.Context, actor *models.User, id uuid.UUID) error {
	recipe, err := loadRecipe(ctx, s.db, id)
	if err != nil {
		return err
	}
	if !policy.CanDelete(actor, recipe) {
		return ErrForbidden
	}
	res := s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", id)
	return affected("delete recipe", res)
}

func (s *RecipeService) visible(ctx context.Context, viewer *models.User, recipes []models.Recipe) ([]dto.RecipeResponse, error) {
	if err := attachCollaborators(ctx, s.db, recipes); err != nil {
		return nil, err
	}
	out := make([]dto.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		if policy.CanView(viewer, &recipes[i]) {
			out = append(out, dto.NewRecipeResponse(&recipes[i]))
		}
	}
	return out, nil
}

// projection joins the category and author so responses carry their names.
func projection(db *gorm.DB) *gorm.DB {
	return db.Joins("Category").Joins("Author")
}

// loadRecipe fetches a recipe with its projection and collaborators, ready
// for policy checks.
func loadRecipe(ctx context.Context, db *gorm.DB, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := projection(db.WithContext(ctx)).First(&recipe, "recipes.id = ?", id).Error; err != nil {
		return nil, classify("get recipe", err)
	}
	recipes := []models.Recipe{recipe}
	if err := attachCollaborators(ctx, db, recipes); err != nil {
		return nil, err
	}
	return &recipes[0], nil
}

func attachCollaborators(ctx context.Context, db *gorm.DB, recipes []models.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(recipes))
	for i := range recipes {
		ids[i] = recipes[i].ID
	}

	var links []models.SecondaryAuthor
	err := db.WithContext(ctx).
		Where("recipe_id IN ?", ids).
		Order("invited_at, user_id").
		Find(&links).Error
	if err != nil {
		return classify("load collaborators", err)
	}

	byRecipe := make(map[uuid.UUID][]models.SecondaryAuthor, len(recipes))
	for _, l := range links {
		byRecipe[l.RecipeID] = append(byRecipe[l.RecipeID], l)
	}
	for i := range recipes {
		recipes[i].Collaborators = byRecipe[recipes[i].ID]
	}
	return nil
}

// mustExist reports a missing referenced row as a validation problem on
// field, so the write is never attempted.
func mustExist(ctx context.Context, db *gorm.DB, model interface{}, id uuid.UUID, field string) error {
	var count int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return classify("check "+field, err)
	}
	if count == 0 {
		return invalid(field, "does not exist")
	}
	return nil
}

// nextModifiedAt guarantees a strictly later timestamp even when two
// mutations land within the clock's resolution.
func nextModifiedAt(prev time.Time) time.Time {
	now := time.Now().UTC()
	if !now.After(prev) {
		return prev.Add(time.Microsecond)
	}
	return now
}
