package dto

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/cookshare/internal/models"
	"github.com/google/uuid"
)

type CreateRecipeRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	PrepTime    *int     `json:"prep_time"`
	Cost        *float64 `json:"cost"`
	IsPublic    bool     `json:"is_public"`
	IsPremium   bool     `json:"is_premium"`
	CategoryID  string   `json:"category_id"`
}

type UpdateRecipeRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	PrepTime    *int     `json:"prep_time"`
	Cost        *float64 `json:"cost"`
	IsPublic    *bool    `json:"is_public"`
	IsPremium   *bool    `json:"is_premium"`
	CategoryID  *string  `json:"category_id"`
}

type RecipeResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	PrepTime     int       `json:"prep_time"`
	Cost         *float64  `json:"cost"`
	IsPublic     bool      `json:"is_public"`
	IsPremium    bool      `json:"is_premium"`
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	AuthorID     uuid.UUID `json:"author_id"`
	AuthorName   string    `json:"author_name"`
	CreatedAt    time.Time `json:"created_at"`
	ModifiedAt   time.Time `json:"modified_at"`
}

// NewRecipeResponse expects Category and Author to be joined; missing
// associations leave the names empty.
func NewRecipeResponse(r *models.Recipe) RecipeResponse {
	resp := RecipeResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		PrepTime:    r.PrepTime,
		Cost:        r.Cost,
		IsPublic:    r.IsPublic,
		IsPremium:   r.IsPremium,
		CategoryID:  r.CategoryID,
		AuthorID:    r.AuthorID,
		CreatedAt:   r.CreatedAt,
		ModifiedAt:  r.ModifiedAt,
	}
	if r.Category != nil {
		resp.CategoryName = r.Category.Name
	}
	if r.Author != nil {
		resp.AuthorName = r.Author.Name
	}
	return resp
}

func NewRecipeResponses(recipes []models.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, len(recipes))
	for i := range recipes {
		out[i] = NewRecipeResponse(&recipes[i])
	}
	return out
}
