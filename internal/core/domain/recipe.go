package domain

import (
	"github.com/shopspring/decimal"
)

// Nutrition holds the per-serving nutrition facts stored inside a recipe's
// detail payload.
type Nutrition struct {
	Kcal    string `json:"kcal"`
	Protein string `json:"protein"`
	Fats    string `json:"fats"`
	Carbs   string `json:"carbs"`
}

// RecipeDetails is the free-form detail payload of a recipe. It is persisted
// as a single JSONB column, mirroring how the mobile client consumes it.
type RecipeDetails struct {
	Description  string     `json:"description"`
	Ingredients  []string   `json:"ingredients"`
	Instructions string     `json:"instructions"`
	PrepTime     string     `json:"prepTime"`
	CookTime     string     `json:"cookTime"`
	Servings     string     `json:"servings"`
	ImageURL     string     `json:"imageUrl,omitempty"`
	Category     string     `json:"category,omitempty"`
	Nutrition    *Nutrition `json:"nutrition,omitempty"`
	Allergens    []string   `json:"allergens,omitempty"`
}

// Recipe is a freely viewable recipe.
type Recipe struct {
	RecipeID string        `json:"recipeID"` // Primary Key (UUID)
	Name     string        `json:"name"`
	Details  RecipeDetails `json:"details"`
	AuditFields
}

// ExclusiveRecipe is a purchasable recipe. Price is in YUM tokens and must be
// positive; the full detail payload is only returned to owners.
type ExclusiveRecipe struct {
	RecipeID string          `json:"recipeID"` // Primary Key (UUID)
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Details  RecipeDetails   `json:"details"`
	AuditFields
}
