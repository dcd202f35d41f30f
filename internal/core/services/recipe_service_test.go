package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/YumDrop/yum_recipes_backend/internal/apperrors"
	"github.com/YumDrop/yum_recipes_backend/internal/core/domain"
	portssvc "github.com/YumDrop/yum_recipes_backend/internal/core/ports/services"
	"github.com/YumDrop/yum_recipes_backend/internal/core/services"
	"github.com/YumDrop/yum_recipes_backend/internal/dto"
)

type RecipeServiceTestSuite struct {
	suite.Suite
	mockRecipeRepo   *MockRecipeRepository
	mockPurchaseRepo *MockPurchaseRepository
	service          portssvc.RecipeSvcFacade

	userID   string
	recipeID string
}

func (suite *RecipeServiceTestSuite) SetupTest() {
	suite.mockRecipeRepo = new(MockRecipeRepository)
	suite.mockPurchaseRepo = new(MockPurchaseRepository)
	suite.service = services.NewRecipeService(suite.mockRecipeRepo, suite.mockPurchaseRepo)

	suite.userID = uuid.NewString()
	suite.recipeID = uuid.NewString()
}

func (suite *RecipeServiceTestSuite) exclusiveRecipe() *domain.ExclusiveRecipe {
	return &domain.ExclusiveRecipe{
		RecipeID: suite.recipeID,
		Name:     "Aged Cheddar Souffle",
		Price:    decimal.RequireFromString("15.50"),
		Details: domain.RecipeDetails{
			Description:  "A rich souffle",
			Ingredients:  []string{"eggs", "aged cheddar"},
			Instructions: "Whisk, fold, bake.",
			ImageURL:     "https://img.example.com/souffle.jpg",
		},
	}
}

func (suite *RecipeServiceTestSuite) TestGetExclusiveRecipe_NotOwned_ReturnsPreview() {
	ctx := context.Background()

	suite.mockRecipeRepo.On("FindExclusiveRecipeByID", ctx, suite.recipeID).Return(suite.exclusiveRecipe(), nil).Once()
	suite.mockPurchaseRepo.On("HasPurchase", ctx, suite.userID, suite.recipeID).Return(false, nil).Once()

	resp, err := suite.service.GetExclusiveRecipeByID(ctx, suite.recipeID, suite.userID)

	suite.Require().NoError(err)
	suite.False(resp.Owned)
	suite.Nil(resp.Details)
	// Preview still carries the storefront fields
	suite.Equal("Aged Cheddar Souffle", resp.Name)
	suite.Equal("A rich souffle", resp.Description)
	suite.True(resp.Price.Equal(decimal.RequireFromString("15.50")))
}

func (suite *RecipeServiceTestSuite) TestGetExclusiveRecipe_Owned_ReturnsDetails() {
	ctx := context.Background()

	suite.mockRecipeRepo.On("FindExclusiveRecipeByID", ctx, suite.recipeID).Return(suite.exclusiveRecipe(), nil).Once()
	suite.mockPurchaseRepo.On("HasPurchase", ctx, suite.userID, suite.recipeID).Return(true, nil).Once()

	resp, err := suite.service.GetExclusiveRecipeByID(ctx, suite.recipeID, suite.userID)

	suite.Require().NoError(err)
	suite.True(resp.Owned)
	suite.Require().NotNil(resp.Details)
	suite.Equal("Whisk, fold, bake.", resp.Details.Instructions)
	suite.Equal([]string{"eggs", "aged cheddar"}, resp.Details.Ingredients)
}

func (suite *RecipeServiceTestSuite) TestGetExclusiveRecipe_NotFound() {
	ctx := context.Background()

	suite.mockRecipeRepo.On("FindExclusiveRecipeByID", ctx, suite.recipeID).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.GetExclusiveRecipeByID(ctx, suite.recipeID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(resp)
	suite.mockPurchaseRepo.AssertNotCalled(suite.T(), "HasPurchase", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RecipeServiceTestSuite) TestListExclusiveRecipes_PreviewsOnly() {
	ctx := context.Background()

	recipes := []domain.ExclusiveRecipe{*suite.exclusiveRecipe()}
	suite.mockRecipeRepo.On("ListExclusiveRecipes", ctx, 20, (*string)(nil)).Return(recipes, nil, nil).Once()

	resp, err := suite.service.ListExclusiveRecipes(ctx, dto.ListRecipesParams{Limit: 20})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Recipes, 1)
	suite.False(resp.Recipes[0].Owned)
	suite.Nil(resp.Recipes[0].Details)
	suite.Nil(resp.NextToken)
}

func (suite *RecipeServiceTestSuite) TestListRecipes_ClampsLimit() {
	ctx := context.Background()

	// A zero limit falls back to the default page size
	suite.mockRecipeRepo.On("ListRecipes", ctx, 20, (*string)(nil)).Return([]domain.Recipe{}, nil, nil).Once()

	_, err := suite.service.ListRecipes(ctx, dto.ListRecipesParams{Limit: 0})
	suite.Require().NoError(err)

	// An oversized limit is capped
	suite.mockRecipeRepo.On("ListRecipes", ctx, 100, (*string)(nil)).Return([]domain.Recipe{}, nil, nil).Once()

	_, err = suite.service.ListRecipes(ctx, dto.ListRecipesParams{Limit: 5000})
	suite.Require().NoError(err)

	suite.mockRecipeRepo.AssertExpectations(suite.T())
}

func (suite *RecipeServiceTestSuite) TestGetRecipeByID_Success() {
	ctx := context.Background()
	recipe := &domain.Recipe{
		RecipeID: suite.recipeID,
		Name:     "Weeknight Stir Fry",
		Details:  domain.RecipeDetails{Description: "Fast and cheap"},
	}

	suite.mockRecipeRepo.On("FindRecipeByID", ctx, suite.recipeID).Return(recipe, nil).Once()

	got, err := suite.service.GetRecipeByID(ctx, suite.recipeID)

	suite.Require().NoError(err)
	suite.Equal(recipe, got)
}

func (suite *RecipeServiceTestSuite) TestListRecipes_RepoError() {
	ctx := context.Background()

	suite.mockRecipeRepo.On("ListRecipes", ctx, 20, (*string)(nil)).Return(nil, nil, assert.AnError).Once()

	resp, err := suite.service.ListRecipes(ctx, dto.ListRecipesParams{Limit: 20})

	suite.Require().Error(err)
	suite.Nil(resp)
}

func TestRecipeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeServiceTestSuite))
}
