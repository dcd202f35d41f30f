package repositories

import (
	"context"

	"github.com/YumDrop/yum_recipes_backend/internal/core/domain"
)

// RecipeReader defines read operations for free recipes.
type RecipeReader interface {
	// FindRecipeByID retrieves a recipe by its ID.
	FindRecipeByID(ctx context.Context, recipeID string) (*domain.Recipe, error)

	// ListRecipes retrieves a page of recipes ordered newest first, using a
	// pagination token. Returns the page and the token for the next page
	// (nil when exhausted).
	ListRecipes(ctx context.Context, limit int, nextToken *string) ([]domain.Recipe, *string, error)
}

// ExclusiveRecipeReader defines read operations for purchasable recipes.
type ExclusiveRecipeReader interface {
	// FindExclusiveRecipeByID retrieves an exclusive recipe by its ID.
	FindExclusiveRecipeByID(ctx context.Context, recipeID string) (*domain.ExclusiveRecipe, error)

	// ListExclusiveRecipes retrieves a page of exclusive recipes ordered
	// newest first, using a pagination token.
	ListExclusiveRecipes(ctx context.Context, limit int, nextToken *string) ([]domain.ExclusiveRecipe, *string, error)
}

// RecipeRepositoryFacade combines all recipe-related repository interfaces.
type RecipeRepositoryFacade interface {
	RecipeReader
	ExclusiveRecipeReader
}
