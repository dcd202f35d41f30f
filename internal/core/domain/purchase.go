package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseDetails carries free-form metadata recorded alongside a purchase,
// persisted as JSONB (e.g. which surface the purchase was made from).
type PurchaseDetails struct {
	PurchasedFrom string `json:"purchasedFrom,omitempty"`
	Method        string `json:"method,omitempty"`
}

// Purchase is the record of a committed exclusive-recipe purchase. Its
// existence for a (user, recipe) pair is the evidence of ownership. A
// purchase is created exactly once by a successful purchase transaction and
// is never mutated or deleted afterwards.
type Purchase struct {
	PurchaseID   string          `json:"purchaseID"` // Primary Key (UUID)
	UserID       string          `json:"userID"`
	RecipeID     string          `json:"recipeID"`
	PricePaid    decimal.Decimal `json:"pricePaid"` // Price at purchase time
	Details      PurchaseDetails `json:"details"`
	PurchaseDate time.Time       `json:"purchaseDate"`
}
