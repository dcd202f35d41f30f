package services

import (
	"context"

	"github.com/YumDrop/yum_recipes_backend/internal/core/domain"
	"github.com/YumDrop/yum_recipes_backend/internal/dto"
)

// RecipeReaderSvc defines read operations for free recipes.
type RecipeReaderSvc interface {
	// GetRecipeByID retrieves a recipe with its full detail payload.
	GetRecipeByID(ctx context.Context, recipeID string) (*domain.Recipe, error)

	// ListRecipes retrieves a token-paginated page of recipes.
	ListRecipes(ctx context.Context, params dto.ListRecipesParams) (*dto.ListRecipesResponse, error)
}

// ExclusiveRecipeReaderSvc defines read operations for purchasable recipes.
type ExclusiveRecipeReaderSvc interface {
	// GetExclusiveRecipeByID retrieves an exclusive recipe for the given
	// requesting user. The full detail payload is included only when the user
	// owns the recipe; otherwise the preview fields are returned.
	GetExclusiveRecipeByID(ctx context.Context, recipeID string, requestingUserID string) (*dto.ExclusiveRecipeResponse, error)

	// ListExclusiveRecipes retrieves a token-paginated page of exclusive
	// recipe previews.
	ListExclusiveRecipes(ctx context.Context, params dto.ListRecipesParams) (*dto.ListExclusiveRecipesResponse, error)
}

// RecipeSvcFacade combines all recipe-related service interfaces.
type RecipeSvcFacade interface {
	RecipeReaderSvc
	ExclusiveRecipeReaderSvc
}
