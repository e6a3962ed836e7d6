package services

import (
	"context"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/cookshare/internal/config"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/database/dbtest"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: time.Hour,
	}
}

func seedUser(t *testing.T, db *gorm.DB, name string, tier models.Tier) *models.User {
	t.Helper()
	u := &models.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    uuid.NewString()[:8] + "@example.com",
		Password: "not-a-real-hash",
		Tier:     tier,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	c := &models.Category{Name: name}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedIngredient(t *testing.T, db *gorm.DB, name string) *models.Ingredient {
	t.Helper()
	i := &models.Ingredient{Name: name, Unit: "g"}
	require.NoError(t, db.Create(i).Error)
	return i
}

func createRecipe(t *testing.T, db *gorm.DB, author *models.User, category *models.Category, public, premium bool) *dto.RecipeResponse {
	t.Helper()
	prep := 30
	r, err := NewRecipeService(db).Create(context.Background(), author, &dto.CreateRecipeRequest{
		Title:      "Receta " + uuid.NewString()[:4],
		PrepTime:   &prep,
		IsPublic:   public,
		IsPremium:  premium,
		CategoryID: category.ID.String(),
	})
	require.NoError(t, err)
	return r
}

func newDB(t *testing.T) *gorm.DB {
	return dbtest.Open(t)
}

func ptr[T any](v T) *T {
	return &v
}
