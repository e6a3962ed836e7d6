package database

import (
	"fmt"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/cookshare/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoPassword is the plaintext password of every seeded demo user.
const DemoPassword = "cookshare123"

type seedIngredient struct {
	Name string
	Unit string
}

var seedCategories = []string{"Postre", "Plato fuerte", "Entrada", "Bebida"}

var seedIngredients = []seedIngredient{
	{Name: "piña", Unit: "g"},
	{Name: "tortilla de maíz", Unit: "pieza"},
	{Name: "carne de cerdo", Unit: "g"},
	{Name: "chile guajillo", Unit: "pieza"},
	{Name: "cebolla", Unit: "g"},
	{Name: "cilantro", Unit: "g"},
	{Name: "leche", Unit: "ml"},
	{Name: "huevo", Unit: "pieza"},
	{Name: "azúcar", Unit: "g"},
	{Name: "arroz", Unit: "g"},
	{Name: "canela", Unit: "g"},
}

type seedQuantity struct {
	Name     string
	Quantity float64
}

type seedStep struct {
	Number      int
	Description string
}

type seedRecipe struct {
	Title       string
	Description string
	PrepTime    int
	Cost        float64
	IsPublic    bool
	IsPremium   bool
	Category    string
	Author      string
	Ingredients []seedQuantity
	Steps       []seedStep
}

var seedRecipes = []seedRecipe{
	{
		Title:       "Tacos al Pastor",
		Description: "Cerdo adobado con chile guajillo, servido con piña asada y cilantro.",
		PrepTime:    90,
		Cost:        120,
		IsPublic:    true,
		Category:    "Plato fuerte",
		Author:      "ana@cookshare.local",
		Ingredients: []seedQuantity{
			{Name: "carne de cerdo", Quantity: 500},
			{Name: "chile guajillo", Quantity: 4},
			{Name: "piña", Quantity: 200},
			{Name: "tortilla de maíz", Quantity: 12},
			{Name: "cebolla", Quantity: 100},
			{Name: "cilantro", Quantity: 20},
		},
		Steps: []seedStep{
			{Number: 1, Description: "Marinar la carne con el adobo de guajillo por al menos 2 horas."},
			{Number: 2, Description: "Asar la carne y la piña en el trompo o sartén."},
			{Number: 3, Description: "Servir en tortillas con cebolla, cilantro y piña."},
		},
	},
	{
		Title:       "Flan napolitano",
		Description: "Flan cremoso de leche y huevo con caramelo.",
		PrepTime:    60,
		Cost:        80,
		IsPublic:    true,
		IsPremium:   true,
		Category:    "Postre",
		Author:      "luis@cookshare.local",
		Ingredients: []seedQuantity{
			{Name: "leche", Quantity: 750},
			{Name: "huevo", Quantity: 5},
			{Name: "azúcar", Quantity: 200},
		},
		Steps: []seedStep{
			{Number: 1, Description: "Preparar el caramelo con el azúcar."},
			{Number: 2, Description: "Licuar leche y huevos y verter sobre el caramelo."},
			{Number: 3, Description: "Hornear a baño maría 50 minutos."},
		},
	},
	{
		Title:       "Arroz con leche",
		Description: "Receta familiar, aún en borrador.",
		PrepTime:    45,
		Cost:        40,
		IsPublic:    false,
		Category:    "Postre",
		Author:      "ana@cookshare.local",
		Ingredients: []seedQuantity{
			{Name: "arroz", Quantity: 200},
			{Name: "leche", Quantity: 1000},
			{Name: "canela", Quantity: 5},
			{Name: "azúcar", Quantity: 150},
		},
		Steps: []seedStep{
			{Number: 1, Description: "Cocer el arroz con la canela."},
			{Number: 2, Description: "Agregar leche y azúcar y cocinar a fuego lento."},
		},
	},
}

var seedUsers = []models.User{
	{Name: "Ana Torres", Email: "ana@cookshare.local", Tier: models.TierPublic},
	{Name: "Luis Méndez", Email: "luis@cookshare.local", Tier: models.TierPremium},
}

// SeedDemoData inserts a small demo catalogue. It does nothing when any
// category already exists.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		slog.Info("demo data already present, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		categories := make(map[string]*models.Category, len(seedCategories))
		for _, name := range seedCategories {
			c := &models.Category{Name: name}
			if err := tx.Create(c).Error; err != nil {
				return fmt.Errorf("seed category %q: %w", name, err)
			}
			categories[name] = c
		}

		ingredients := make(map[string]*models.Ingredient, len(seedIngredients))
		for _, si := range seedIngredients {
			i := &models.Ingredient{Name: si.Name, Unit: si.Unit}
			if err := tx.Create(i).Error; err != nil {
				return fmt.Errorf("seed ingredient %q: %w", si.Name, err)
			}
			ingredients[si.Name] = i
		}

		users := make(map[string]*models.User, len(seedUsers))
		for _, su := range seedUsers {
			u := su
			u.Password = string(hash)
			if err := tx.Create(&u).Error; err != nil {
				return fmt.Errorf("seed user %q: %w", su.Email, err)
			}
			users[u.Email] = &u
		}

		for _, sr := range seedRecipes {
			cost := sr.Cost
			recipe := models.Recipe{
				Title:       sr.Title,
				Description: sr.Description,
				PrepTime:    sr.PrepTime,
				Cost:        &cost,
				IsPublic:    sr.IsPublic,
				IsPremium:   sr.IsPremium,
				CategoryID:  categories[sr.Category].ID,
				AuthorID:    users[sr.Author].ID,
			}
			if err := tx.Create(&recipe).Error; err != nil {
				return fmt.Errorf("seed recipe %q: %w", sr.Title, err)
			}
			for _, sq := range sr.Ingredients {
				link := models.RecipeIngredient{
					RecipeID:     recipe.ID,
					IngredientID: ingredients[sq.Name].ID,
					Quantity:     sq.Quantity,
				}
				if err := tx.Create(&link).Error; err != nil {
					return fmt.Errorf("seed recipe ingredient %q: %w", sq.Name, err)
				}
			}
			for _, st := range sr.Steps {
				step := models.Step{RecipeID: recipe.ID, StepNumber: st.Number, Description: st.Description}
				if err := tx.Create(&step).Error; err != nil {
					return fmt.Errorf("seed step %d of %q: %w", st.Number, sr.Title, err)
				}
			}
		}

		slog.Info("demo data seeded",
			"categories", len(seedCategories),
			"ingredients", len(seedIngredients),
			"recipes", len(seedRecipes),
		)
		return nil
	})
}
