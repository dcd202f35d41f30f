package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/YumDrop/yum_recipes_backend/internal/apperrors"
	"github.com/YumDrop/yum_recipes_backend/internal/core/domain"
	portsrepo "github.com/YumDrop/yum_recipes_backend/internal/core/ports/repositories"
	portssvc "github.com/YumDrop/yum_recipes_backend/internal/core/ports/services"
	"github.com/YumDrop/yum_recipes_backend/internal/dto"
	"github.com/YumDrop/yum_recipes_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrRecipeUnavailable   = errors.New("exclusive recipe unavailable")
	ErrInsufficientBalance = errors.New("insufficient YUM balance")
	ErrAlreadyOwned        = errors.New("exclusive recipe already purchased")
	ErrPurchaseFailed      = errors.New("purchase transaction failed")
)

// purchaseSource is recorded in the purchase metadata payload.
const purchaseSource = "api"

// purchaseService provides the purchase transaction operations.
type purchaseService struct {
	userRepo     portsrepo.UserRepositoryFacade
	recipeRepo   portsrepo.RecipeRepositoryFacade
	purchaseRepo portsrepo.PurchaseRepositoryFacade
}

// NewPurchaseService creates a new PurchaseService.
func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepositoryFacade, userRepo portsrepo.UserRepositoryFacade, recipeRepo portsrepo.RecipeRepositoryFacade) portssvc.PurchaseSvc {
	return &purchaseService{
		userRepo:     userRepo,
		recipeRepo:   recipeRepo,
		purchaseRepo: purchaseRepo,
	}
}

// Ensure purchaseService implements the portssvc.PurchaseSvc interface
var _ portssvc.PurchaseSvc = (*purchaseService)(nil)

// PurchaseRecipe validates and commits the purchase of an exclusive recipe.
//
// Validation runs in a fixed order, each check a distinct failure mode:
// user exists, recipe exists with a positive price, price is affordable,
// recipe not already owned. The debit and the purchase record then commit as
// one atomic unit in the repository; the balance check is repeated there
// under a row lock, so a stale read here cannot overdraw the account. On any
// failure the user's balance and purchase set are exactly as they were
// before the call.
func (s *purchaseService) PurchaseRecipe(ctx context.Context, userID string, recipeID string) (*domain.Purchase, decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// 1. The user must exist
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, decimal.Zero, ErrUserNotFound
		}
		logger.Error("Failed to fetch user for purchase", slog.String("error", err.Error()), slog.String("user_id", userID))
		return nil, decimal.Zero, fmt.Errorf("%w: %s", ErrPurchaseFailed, err.Error())
	}

	// 2. The recipe must exist and carry a positive price
	recipe, err := s.recipeRepo.FindExclusiveRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, decimal.Zero, ErrRecipeUnavailable
		}
		logger.Error("Failed to fetch exclusive recipe for purchase", slog.String("error", err.Error()), slog.String("recipe_id", recipeID))
		return nil, decimal.Zero, fmt.Errorf("%w: %s", ErrPurchaseFailed, err.Error())
	}
	if recipe.Price.LessThanOrEqual(decimal.Zero) {
		return nil, decimal.Zero, fmt.Errorf("%w: price is not set", ErrRecipeUnavailable)
	}

	// 3. The price must be affordable. Rejection here never mutates state,
	// so repeating an unaffordable call is harmless.
	if recipe.Price.GreaterThan(user.Balance) {
		return nil, decimal.Zero, fmt.Errorf("%w: price %s exceeds balance %s",
			ErrInsufficientBalance, recipe.Price.String(), user.Balance.String())
	}

	// 4. Repeat purchases are rejected. This read is the fast path; the
	// unique constraint inside the atomic unit is authoritative under races.
	owned, err := s.purchaseRepo.HasPurchase(ctx, userID, recipeID)
	if err != nil {
		logger.Error("Failed to check prior purchase", slog.String("error", err.Error()), slog.String("recipe_id", recipeID))
		return nil, decimal.Zero, fmt.Errorf("%w: %s", ErrPurchaseFailed, err.Error())
	}
	if owned {
		return nil, decimal.Zero, ErrAlreadyOwned
	}

	purchase := domain.Purchase{
		PurchaseID: uuid.NewString(),
		UserID:     userID,
		RecipeID:   recipeID,
		PricePaid:  recipe.Price,
		Details: domain.PurchaseDetails{
			PurchasedFrom: purchaseSource,
			Method:        "balance",
		},
		PurchaseDate: time.Now().UTC(),
	}

	// Commit debit + record atomically. The repository re-validates the
	// balance under a row lock and maps its failures to sentinels.
	newBalance, err := s.purchaseRepo.ExecutePurchase(ctx, purchase)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			return nil, decimal.Zero, ErrUserNotFound
		case errors.Is(err, apperrors.ErrValidation):
			// Balance changed between the read above and the lock
			return nil, decimal.Zero, fmt.Errorf("%w: %s", ErrInsufficientBalance, err.Error())
		case errors.Is(err, apperrors.ErrDuplicate):
			return nil, decimal.Zero, ErrAlreadyOwned
		default:
			logger.Error("Purchase transaction aborted", slog.String("error", err.Error()), slog.String("purchase_id", purchase.PurchaseID))
			return nil, decimal.Zero, fmt.Errorf("%w: %s", ErrPurchaseFailed, err.Error())
		}
	}

	logger.Info("Purchase committed",
		slog.String("purchase_id", purchase.PurchaseID),
		slog.String("recipe_id", recipeID),
		slog.String("price_paid", purchase.PricePaid.String()),
		slog.String("new_balance", newBalance.String()),
	)
	return &purchase, newBalance, nil
}

// ListPurchases retrieves a token-paginated page of the user's purchases.
func (s *purchaseService) ListPurchases(ctx context.Context, userID string, params dto.ListPurchasesParams) (*dto.ListPurchasesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	purchases, nextToken, err := s.purchaseRepo.ListPurchasesByUser(ctx, userID, params.Limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list purchases", slog.String("error", err.Error()), slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to retrieve purchases: %w", err)
	}

	return &dto.ListPurchasesResponse{
		Purchases: dto.ToPurchaseResponses(purchases),
		NextToken: nextToken,
	}, nil
}

// HasPurchased reports whether the user owns the exclusive recipe.
func (s *purchaseService) HasPurchased(ctx context.Context, userID string, recipeID string) (bool, error) {
	owned, err := s.purchaseRepo.HasPurchase(ctx, userID, recipeID)
	if err != nil {
		return false, fmt.Errorf("failed to check ownership: %w", err)
	}
	return owned, nil
}
