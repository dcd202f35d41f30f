package models

import (
	"github.com/shopspring/decimal"
)

// Recipe represents a row of the yum_recipes table. The Data column holds the
// serialized RecipeDetails payload.
type Recipe struct {
	RecipeID string `db:"recipe_id"`
	Name     string `db:"name"`
	Data     []byte `db:"data"` // JSONB payload
	AuditFields
}

// ExclusiveRecipe represents a row of the yum_exclusive_recipes table.
type ExclusiveRecipe struct {
	RecipeID string          `db:"recipe_id"`
	Name     string          `db:"name"`
	Price    decimal.Decimal `db:"price"`
	Data     []byte          `db:"data"` // JSONB payload
	AuditFields
}
