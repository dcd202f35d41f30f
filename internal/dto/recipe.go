package dto

import (
	"github.com/YumDrop/yum_recipes_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListRecipesParams defines query parameters for token-paginated recipe
// listings.
type ListRecipesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// RecipeResponse is the full representation of a free recipe.
type RecipeResponse struct {
	RecipeID string               `json:"recipeID"`
	Name     string               `json:"name"`
	Details  domain.RecipeDetails `json:"details"`
}

// ListRecipesResponse wraps a page of recipes and the next page token.
type ListRecipesResponse struct {
	Recipes   []RecipeResponse `json:"recipes"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// ExclusiveRecipeResponse represents an exclusive recipe. Details is nil
// unless the requesting user owns the recipe; Owned reports which case holds.
type ExclusiveRecipeResponse struct {
	RecipeID    string                `json:"recipeID"`
	Name        string                `json:"name"`
	Price       decimal.Decimal       `json:"price"`
	Owned       bool                  `json:"owned"`
	Description string                `json:"description,omitempty"`
	ImageURL    string                `json:"imageUrl,omitempty"`
	Details     *domain.RecipeDetails `json:"details,omitempty"`
}

// ListExclusiveRecipesResponse wraps a page of exclusive recipe previews.
type ListExclusiveRecipesResponse struct {
	Recipes   []ExclusiveRecipeResponse `json:"recipes"`
	NextToken *string                   `json:"nextToken,omitempty"`
}

// ToRecipeResponse converts a domain.Recipe to a RecipeResponse DTO.
func ToRecipeResponse(r *domain.Recipe) RecipeResponse {
	return RecipeResponse{
		RecipeID: r.RecipeID,
		Name:     r.Name,
		Details:  r.Details,
	}
}

// ToExclusiveRecipePreview converts an exclusive recipe to its unowned
// preview: price, image and description only, never the full payload.
func ToExclusiveRecipePreview(r *domain.ExclusiveRecipe) ExclusiveRecipeResponse {
	return ExclusiveRecipeResponse{
		RecipeID:    r.RecipeID,
		Name:        r.Name,
		Price:       r.Price,
		Owned:       false,
		Description: r.Details.Description,
		ImageURL:    r.Details.ImageURL,
	}
}

// ToExclusiveRecipeOwned converts an exclusive recipe to its owned
// representation, including the full detail payload.
func ToExclusiveRecipeOwned(r *domain.ExclusiveRecipe) ExclusiveRecipeResponse {
	details := r.Details
	return ExclusiveRecipeResponse{
		RecipeID:    r.RecipeID,
		Name:        r.Name,
		Price:       r.Price,
		Owned:       true,
		Description: r.Details.Description,
		ImageURL:    r.Details.ImageURL,
		Details:     &details,
	}
}
