package services

import (
	"context"

	"github.com/YumDrop/yum_recipes_backend/internal/core/domain"
	"github.com/YumDrop/yum_recipes_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// PurchaseSvc defines the purchase transaction operations.
type PurchaseSvc interface {
	// PurchaseRecipe validates and commits the purchase of an exclusive
	// recipe: exactly one balance debit and one purchase record, or no state
	// change at all. The returned decimal is the balance after the debit.
	//
	// Failure modes, each a sentinel error in the services package:
	// user missing, recipe missing or unpriced, insufficient balance,
	// already owned, and transaction aborted.
	PurchaseRecipe(ctx context.Context, userID string, recipeID string) (*domain.Purchase, decimal.Decimal, error)

	// ListPurchases retrieves a token-paginated page of the user's purchases.
	ListPurchases(ctx context.Context, userID string, params dto.ListPurchasesParams) (*dto.ListPurchasesResponse, error)

	// HasPurchased reports whether the user owns the exclusive recipe.
	HasPurchased(ctx context.Context, userID string, recipeID string) (bool, error)
}
