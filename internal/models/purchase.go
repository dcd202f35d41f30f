package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase represents a row of the yum_purchased_recipes table.
// (user_id, recipe_id) is unique; the constraint backs the single-purchase
// policy under concurrent purchase attempts.
type Purchase struct {
	PurchaseID   string          `db:"purchase_id"`
	UserID       string          `db:"user_id"`
	RecipeID     string          `db:"recipe_id"`
	PricePaid    decimal.Decimal `db:"price_paid"`
	Details      []byte          `db:"purchase_details"` // JSONB payload
	PurchaseDate time.Time       `db:"purchase_date"`
}
