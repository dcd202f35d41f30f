package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/YumDrop/yum_recipes_backend/internal/apperrors"
	"github.com/YumDrop/yum_recipes_backend/internal/core/domain"
	portsrepo "github.com/YumDrop/yum_recipes_backend/internal/core/ports/repositories"
	portssvc "github.com/YumDrop/yum_recipes_backend/internal/core/ports/services"
	"github.com/YumDrop/yum_recipes_backend/internal/dto"
	"github.com/YumDrop/yum_recipes_backend/internal/middleware"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// recipeService provides read operations over free and exclusive recipes.
type recipeService struct {
	recipeRepo   portsrepo.RecipeRepositoryFacade
	purchaseRepo portsrepo.PurchaseRepositoryFacade
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(recipeRepo portsrepo.RecipeRepositoryFacade, purchaseRepo portsrepo.PurchaseRepositoryFacade) portssvc.RecipeSvcFacade {
	return &recipeService{
		recipeRepo:   recipeRepo,
		purchaseRepo: purchaseRepo,
	}
}

var _ portssvc.RecipeSvcFacade = (*recipeService)(nil)

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

// GetRecipeByID retrieves a free recipe with its full detail payload.
func (s *recipeService) GetRecipeByID(ctx context.Context, recipeID string) (*domain.Recipe, error) {
	recipe, err := s.recipeRepo.FindRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return recipe, nil
}

// ListRecipes retrieves a token-paginated page of free recipes.
func (s *recipeService) ListRecipes(ctx context.Context, params dto.ListRecipesParams) (*dto.ListRecipesResponse, error) {
	recipes, nextToken, err := s.recipeRepo.ListRecipes(ctx, clampLimit(params.Limit), params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	responses := make([]dto.RecipeResponse, len(recipes))
	for i := range recipes {
		responses[i] = dto.ToRecipeResponse(&recipes[i])
	}
	return &dto.ListRecipesResponse{
		Recipes:   responses,
		NextToken: nextToken,
	}, nil
}

// GetExclusiveRecipeByID retrieves an exclusive recipe for the requesting
// user. Owners get the full detail payload; everyone else gets the preview.
func (s *recipeService) GetExclusiveRecipeByID(ctx context.Context, recipeID string, requestingUserID string) (*dto.ExclusiveRecipeResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	recipe, err := s.recipeRepo.FindExclusiveRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		logger.Error("Failed to fetch exclusive recipe", slog.String("error", err.Error()), slog.String("recipe_id", recipeID))
		return nil, fmt.Errorf("failed to get exclusive recipe: %w", err)
	}

	owned, err := s.purchaseRepo.HasPurchase(ctx, requestingUserID, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check recipe ownership: %w", err)
	}

	if !owned {
		resp := dto.ToExclusiveRecipePreview(recipe)
		return &resp, nil
	}
	resp := dto.ToExclusiveRecipeOwned(recipe)
	return &resp, nil
}

// ListExclusiveRecipes retrieves a token-paginated page of exclusive recipe
// previews. Listings never include the full detail payload regardless of
// ownership; the detail endpoint gates that per recipe.
func (s *recipeService) ListExclusiveRecipes(ctx context.Context, params dto.ListRecipesParams) (*dto.ListExclusiveRecipesResponse, error) {
	recipes, nextToken, err := s.recipeRepo.ListExclusiveRecipes(ctx, clampLimit(params.Limit), params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list exclusive recipes: %w", err)
	}

	responses := make([]dto.ExclusiveRecipeResponse, len(recipes))
	for i := range recipes {
		responses[i] = dto.ToExclusiveRecipePreview(&recipes[i])
	}
	return &dto.ListExclusiveRecipesResponse{
		Recipes:   responses,
		NextToken: nextToken,
	}, nil
}
