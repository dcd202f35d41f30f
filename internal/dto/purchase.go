package dto

import (
	"time"

	"github.com/YumDrop/yum_recipes_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PurchaseRequest identifies the exclusive recipe to buy. The purchasing
// user comes from the authenticated context, never from the body.
type PurchaseRequest struct {
	RecipeID string `json:"recipeID" binding:"required,uuid"`
}

// PurchaseOutcome is the terminal result of a purchase call. Exactly one of
// the two shapes occurs: success with the new balance and the created record,
// or failure with an error kind and untouched state.
type PurchaseOutcome struct {
	Success    bool              `json:"success"`
	NewBalance *decimal.Decimal  `json:"newBalance,omitempty"`
	Purchase   *PurchaseResponse `json:"purchase,omitempty"`
	ErrorKind  string            `json:"errorKind,omitempty"`
	Message    string            `json:"message,omitempty"`
}

// PurchaseResponse is the public representation of a purchase record.
type PurchaseResponse struct {
	PurchaseID   string          `json:"purchaseID"`
	RecipeID     string          `json:"recipeID"`
	PricePaid    decimal.Decimal `json:"pricePaid"`
	PurchaseDate time.Time       `json:"purchaseDate"`
}

// ListPurchasesParams defines query parameters for listing purchases.
type ListPurchasesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListPurchasesResponse wraps a page of the user's purchases.
type ListPurchasesResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// OwnershipResponse reports whether the user owns an exclusive recipe.
type OwnershipResponse struct {
	RecipeID string `json:"recipeID"`
	Owned    bool   `json:"owned"`
}

// ToPurchaseResponse converts a domain.Purchase to a PurchaseResponse DTO.
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	return PurchaseResponse{
		PurchaseID:   p.PurchaseID,
		RecipeID:     p.RecipeID,
		PricePaid:    p.PricePaid,
		PurchaseDate: p.PurchaseDate,
	}
}

// ToPurchaseResponses converts a slice of purchases.
func ToPurchaseResponses(purchases []domain.Purchase) []PurchaseResponse {
	responses := make([]PurchaseResponse, len(purchases))
	for i := range purchases {
		responses[i] = ToPurchaseResponse(&purchases[i])
	}
	return responses
}
