package services

import (
	"context"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/cookshare/internal/database"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeService_CreateProjection(t *testing.T) {
	db := newDB(t)
	author := seedUser(t, db, "Ana", models.TierPublic)
	category := seedCategory(t, db, "Postre")

	r := createRecipe(t, db, author, category, true, false)
	assert.Equal(t, author.ID, r.AuthorID)
	assert.Equal(t, "Ana", r.AuthorName)
	assert.Equal(t, category.ID, r.CategoryID)
	assert.Equal(t, "Postre", r.CategoryName)
	assert.Equal(t, 30, r.PrepTime)
}

func TestRecipeService_CreateValidation(t *testing.T) {
	db := newDB(t)
	author := seedUser(t, db, "Ana", models.TierPublic)
	category := seedCategory(t, db, "Postre")
	svc := NewRecipeService(db)
	ctx := context.Background()

	tests := []struct {
		name  string
		req   dto.CreateRecipeRequest
		field string
	}{
		{"missing title", dto.CreateRecipeRequest{PrepTime: ptr(10), CategoryID: category.ID.String()}, "title"},
		{"missing prep time", dto.CreateRecipeRequest{Title: "T", CategoryID: category.ID.String()}, "prep_time"},
		{"zero prep time", dto.CreateRecipeRequest{Title: "T", PrepTime: ptr(0), CategoryID: category.ID.String()}, "prep_time"},
		{"negative cost", dto.CreateRecipeRequest{Title: "T", PrepTime: ptr(10), Cost: ptr(-1.0), CategoryID: category.ID.String()}, "cost"},
		{"missing category", dto.CreateRecipeRequest{Title: "T", PrepTime: ptr(10)}, "category_id"},
		{"unknown category", dto.CreateRecipeRequest{Title: "T", PrepTime: ptr(10), CategoryID: uuid.NewString()}, "category_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, author, &tt.req)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.Recipe{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRecipeService_CreateRequiresUser(t *testing.T) {
	db := newDB(t)
	category := seedCategory(t, db, "Postre")

	_, err := NewRecipeService(db).Create(context.Background(), nil, &dto.CreateRecipeRequest{
		Title: "T", PrepTime: ptr(10), CategoryID: category.ID.String(),
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRecipeService_GetHonoursVisibility(t *testing.T) {
	db := newDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()
	author := seedUser(t, db, "Ana", models.TierPublic)
	premium := seedUser(t, db, "Luis", models.TierPremium)
	category := seedCategory(t, db, "Postre")

	private := createRecipe(t, db, author, category, false, true)
	paid := createRecipe(t, db, author, category, true, true)

	_, err := svc.Get(ctx, author, private.ID)
	assert.NoError(t, err)
	_, err = svc.Get(ctx, premium, private.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Get(ctx, nil, paid.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Get(ctx, premium, paid.ID)
	assert.NoError(t, err)

	_, err = svc.Get(ctx, author, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecipeService_ListFiltersByViewer(t *testing.T) {
	db := newDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()
	author := seedUser(t, db, "Ana", models.TierPublic)
	premium := seedUser(t, db, "Luis", models.TierPremium)
	category := seedCategory(t, db, "Postre")

	createRecipe(t, db, author, category, true, false)
	createRecipe(t, db, author, category, true, true)
	createRecipe(t, db, author, category, false, false)

	anon, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, anon, 1)

	paid, err := svc.List(ctx, premium)
	require.NoError(t, err)
	assert.Len(t, paid, 2)

	own, err := svc.List(ctx, author)
	require.NoError(t, err)
	assert.Len(t, own, 3)
}

func TestRecipeService_SearchSeededIngredient(t *testing.T) {
	db := newDB(t)
	require.NoError(t, database.SeedDemoData(db))

	results, err := NewRecipeService(db).Search(context.Background(), nil, "piñ")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Tacos al Pastor", results[0].Title)
}

func TestRecipeService_SearchMatchesTitleAndIngredientOnce(t *testing.T) {
	db := newDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()
	author := seedUser(t, db, "Ana", models.TierPublic)
	category := seedCategory(t, db, "Postre")
	leche := seedIngredient(t, db, "leche")
	condensada := seedIngredient(t, db, "leche condensada")

	title := "Arroz con Leche"
	r, err := svc.Create(ctx, author, &dto.CreateRecipeRequest{
		Title: title, PrepTime: ptr(40), IsPublic: true, CategoryID: category.ID.String(),
	})
	require.NoError(t, err)

	links := NewRecipeIngredientService(db)
	for _, ing := range []*models.Ingredient{leche, condensada} {
		_, err := links.Add(ctx, author, r.ID, &dto.AddRecipeIngredientRequest{
			IngredientID: ing.ID.String(), Quantity: ptr(1.0),
		})
		require.NoError(t, err)
	}

	results, err := svc.Search(ctx, nil, "LECHE")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, title, results[0].Title)

	_, err = svc.Search(ctx, nil, "  ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRecipeService_SearchHidesInvisible(t *testing.T) {
	db := newDB(t)
	require.NoError(t, database.SeedDemoData(db))

	results, err := NewRecipeService(db).Search(context.Background(), nil, "arroz")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRecipeService_SearchTreatsWildcardsLiterally(t *testing.T) {
	db := newDB(t)
	require.NoError(t, database.SeedDemoData(db))
	svc := NewRecipeService(db)
	ctx := context.Background()

	for _, term := range []string{"_", "%", `\`} {
		results, err := svc.Search(ctx, nil, term)
		require.NoError(t, err)
		assert.Empty(t, results, "term %q", term)
	}

	author := seedUser(t, db, "Ana", models.TierPublic)
	r := createRecipe(t, db, author, seedCategory(t, db, "Postre"), true, false)
	_, err := svc.Update(ctx, author, r.ID, &dto.UpdateRecipeRequest{Title: ptr("Brownie 70% cacao_amargo")})
	require.NoError(t, err)

	for _, term := range []string{"_", "70%", "o_a"} {
		results, err := svc.Search(ctx, nil, term)
		require.NoError(t, err)
		require.Len(t, results, 1, "term %q", term)
		assert.Equal(t, r.ID, results[0].ID)
	}
}

func TestRecipeService_UpdateAdvancesModifiedAt(t *testing.T) {
	db := newDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()
	author := seedUser(t, db, "Ana", models.TierPublic)
	category := seedCategory(t, db, "Postre")
	r := createRecipe(t, db, author, category, true, false)

	first, err := svc.Update(ctx, author, r.ID, &dto.UpdateRecipeRequest{Title: ptr("Uno")})
	require.NoError(t, err)
	assert.True(t, first.ModifiedAt.After(r.ModifiedAt))

	second, err := svc.Update(ctx, author, r.ID, &dto.UpdateRecipeRequest{PrepTime: ptr(5)})
	require.NoError(t, err)
	assert.True(t, second.ModifiedAt.After(first.ModifiedAt))
	assert.Equal(t, "Uno", second.Title)
	assert.Equal(t, 5, second.PrepTime)
	assert.Equal(t, r.CreatedAt.Unix(), second.CreatedAt.Unix())
}

func TestRecipeService_UpdatePermissions(t *testing.T) {
	db := newDB(t)
	svc := NewRecipeService(db)
	collabs := NewCollaboratorService(db)
	ctx := context.Background()
	author := seedUser(t, db, "Ana", models.TierPublic)
	editor := seedUser(t, db, "Luis", models.TierPublic)
	guest := seedUser(t, db, "Eva", models.TierPublic)
	category := seedCategory(t, db, "Postre")
	r := createRecipe(t, db, author, category, true, false)

	_, err := collabs.Add(ctx, author, r.ID, &dto.AddCollaboratorRequest{UserID: editor.ID.String(), CanModify: true})
	require.NoError(t, err)
	_, err = collabs.Add(ctx, author, r.ID, &dto.AddCollaboratorRequest{UserID: guest.ID.String(), Role: "guest"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, editor, r.ID, &dto.UpdateRecipeRequest{Title: ptr("Editada")})
	assert.NoError(t, err)

	_, err = svc.Update(ctx, guest, r.ID, &dto.UpdateRecipeRequest{Title: ptr("No")})
	assert.ErrorIs(t, err, ErrForbidden)

	assert.ErrorIs(t, svc.Delete(ctx, editor, r.ID), ErrForbidden)
	assert.NoError(t, svc.Delete(ctx, author, r.ID))
}

func TestRecipeService_DeleteCascades(t *testing.T) {
	db := newDB(t)
	ctx := context.Background()
	author := seedUser(t, db, "Ana", models.TierPublic)
	rater := seedUser(t, db, "Luis", models.TierPublic)
	category := seedCategory(t, db, "Postre")
	ing := seedIngredient(t, db, "azúcar")
	r := createRecipe(t, db, author, category, true, false)

	_, err := NewStepService(db).Create(ctx, author, r.ID, &dto.CreateStepRequest{StepNumber: ptr(1), Description: "Mezclar"})
	require.NoError(t, err)
	_, err = NewRatingService(db, nil).Create(ctx, rater, r.ID, &dto.RatingRequest{Score: ptr(5)})
	require.NoError(t, err)
	_, err = NewRecipeIngredientService(db).Add(ctx, author, r.ID, &dto.AddRecipeIngredientRequest{IngredientID: ing.ID.String(), Quantity: ptr(10.0)})
	require.NoError(t, err)
	_, err = NewCollaboratorService(db).Add(ctx, author, r.ID, &dto.AddCollaboratorRequest{UserID: rater.ID.String()})
	require.NoError(t, err)

	require.NoError(t, NewRecipeService(db).Delete(ctx, author, r.ID))

	for _, model := range []interface{}{&models.Step{}, &models.Rating{}, &models.RecipeIngredient{}, &models.SecondaryAuthor{}} {
		var count int64
		require.NoError(t, db.Model(model).Where("recipe_id = ?", r.ID).Count(&count).Error)
		assert.Zero(t, count, "%T rows should cascade", model)
	}

	var ingredients int64
	require.NoError(t, db.Model(&models.Ingredient{}).Count(&ingredients).Error)
	assert.EqualValues(t, 1, ingredients)
}

func TestRecipeService_AuthorCannotBeDeletedWhileOwningRecipes(t *testing.T) {
	db := newDB(t)
	author := seedUser(t, db, "Ana", models.TierPublic)
	createRecipe(t, db, author, seedCategory(t, db, "Postre"), true, false)

	err := NewUserService(db).Delete(context.Background(), author.ID)
	assert.ErrorIs(t, err, ErrConflict)
}

// Postre scenario: a public user authors a private premium dessert, a
// premium stranger cannot see it, the author can.
func TestRecipeService_PrivateDessertScenario(t *testing.T) {
	db := newDB(t)
	ctx := context.Background()
	svc := NewRecipeService(db)
	a := seedUser(t, db, "Ana", models.TierPublic)
	b := seedUser(t, db, "Luis", models.TierPremium)
	postre := seedCategory(t, db, "Postre")

	r, err := svc.Create(ctx, a, &dto.CreateRecipeRequest{
		Title: "Pastel de tres leches", PrepTime: ptr(120), Cost: ptr(150.5),
		IsPublic: false, IsPremium: true, CategoryID: postre.ID.String(),
	})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), r.CreatedAt, time.Minute)

	_, err = svc.Get(ctx, b, r.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := svc.Get(ctx, a, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Postre", got.CategoryName)
	require.NotNil(t, got.Cost)
	assert.InDelta(t, 150.5, *got.Cost, 0.001)

	assert.ErrorIs(t, NewCategoryService(db).Delete(ctx, postre.ID), ErrConflict)
}
