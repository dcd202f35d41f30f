package repositories

import (
	"context"

	"github.com/YumDrop/yum_recipes_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PurchaseReader defines read operations for purchase records.
type PurchaseReader interface {
	// HasPurchase reports whether a purchase record exists for the pair.
	HasPurchase(ctx context.Context, userID string, recipeID string) (bool, error)

	// ListPurchasesByUser retrieves a page of the user's purchases ordered
	// newest first, using a pagination token.
	ListPurchasesByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Purchase, *string, error)
}

// PurchaseWriter defines the atomic purchase commit.
type PurchaseWriter interface {
	// ExecutePurchase applies the balance debit and the purchase record
	// insert as a single database transaction. The user's balance row is
	// locked for the duration and affordability is re-validated under the
	// lock, so concurrent purchases against the same user serialize and the
	// two writes are never independently visible.
	//
	// Returns the balance after the debit. Sentinel failures:
	// apperrors.ErrNotFound (user row gone), apperrors.ErrValidation
	// (insufficient balance under the lock), apperrors.ErrDuplicate
	// (purchase record already exists for the pair). Anything else means the
	// transaction aborted with no state change.
	ExecutePurchase(ctx context.Context, purchase domain.Purchase) (decimal.Decimal, error)
}

// PurchaseRepositoryFacade combines all purchase-related repository interfaces.
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}
