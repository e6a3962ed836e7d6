package database_test

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/cookshare/internal/database"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/database/dbtest"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedDemoData(t *testing.T) {
	db := dbtest.Open(t)
	require.NoError(t, database.SeedDemoData(db))

	counts := map[string]interface{}{
		"categories":  &models.Category{},
		"ingredients": &models.Ingredient{},
		"users":       &models.User{},
		"recipes":     &models.Recipe{},
	}
	want := map[string]int64{"categories": 4, "ingredients": 11, "users": 2, "recipes": 3}
	for name, model := range counts {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		assert.Equal(t, want[name], n, name)
	}

	var tacos models.Recipe
	require.NoError(t, db.Where("title = ?", "Tacos al Pastor").First(&tacos).Error)
	var steps int64
	require.NoError(t, db.Model(&models.Step{}).Where("recipe_id = ?", tacos.ID).Count(&steps).Error)
	assert.EqualValues(t, 3, steps)

	var ana models.User
	require.NoError(t, db.Where("email = ?", "ana@cookshare.local").First(&ana).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(ana.Password), []byte(database.DemoPassword)))
}

func TestSeedDemoDataIsIdempotent(t *testing.T) {
	db := dbtest.Open(t)
	require.NoError(t, database.SeedDemoData(db))
	require.NoError(t, database.SeedDemoData(db))

	var recipes int64
	require.NoError(t, db.Model(&models.Recipe{}).Count(&recipes).Error)
	assert.EqualValues(t, 3, recipes)
}

func TestMigrateEnforcesForeignKeys(t *testing.T) {
	db := dbtest.Open(t)

	err := db.Create(&models.Step{RecipeID: uuid.New(), StepNumber: 1, Description: "huérfano"}).Error
	assert.Error(t, err)
}
