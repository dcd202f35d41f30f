package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YumDrop/yum_recipes_backend/internal/apperrors"
	portssvc "github.com/YumDrop/yum_recipes_backend/internal/core/ports/services"
	"github.com/YumDrop/yum_recipes_backend/internal/dto"
	"github.com/YumDrop/yum_recipes_backend/internal/middleware"
)

// recipeHandler handles HTTP requests for free and exclusive recipes.
type recipeHandler struct {
	recipeService portssvc.RecipeSvcFacade
}

// newRecipeHandler creates a new recipeHandler.
func newRecipeHandler(rs portssvc.RecipeSvcFacade) *recipeHandler {
	return &recipeHandler{
		recipeService: rs,
	}
}

// registerRecipeRoutes registers all recipe-related routes.
func registerRecipeRoutes(rg *gin.RouterGroup, recipeService portssvc.RecipeSvcFacade) {
	h := newRecipeHandler(recipeService)

	recipes := rg.Group("/recipes")
	{
		recipes.GET("", h.listRecipes)
		recipes.GET("/:id", h.getRecipe)
	}

	exclusive := rg.Group("/exclusive-recipes")
	{
		exclusive.GET("", h.listExclusiveRecipes)
		exclusive.GET("/:id", h.getExclusiveRecipe)
	}
}

// listRecipes godoc
// @Summary List recipes
// @Description Retrieves a token-paginated page of free recipes, newest first
// @Tags recipes
// @Produce json
// @Param limit query int false "Max results" default(20)
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListRecipesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recipes [get]
func (h *recipeHandler) listRecipes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListRecipesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.recipeService.ListRecipes(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list recipes", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve recipes"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getRecipe godoc
// @Summary Get a recipe by ID
// @Description Retrieves a free recipe with its full detail payload
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} dto.RecipeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Recipe not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recipes/{id} [get]
func (h *recipeHandler) getRecipe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recipeID := c.Param("id")

	recipe, err := h.recipeService.GetRecipeByID(c.Request.Context(), recipeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Recipe not found"})
			return
		}
		logger.Error("Failed to get recipe", slog.String("error", err.Error()), slog.String("recipe_id", recipeID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve recipe"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRecipeResponse(recipe))
}

// listExclusiveRecipes godoc
// @Summary List exclusive recipes
// @Description Retrieves a token-paginated page of purchasable recipe previews
// @Tags exclusive-recipes
// @Produce json
// @Param limit query int false "Max results" default(20)
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListExclusiveRecipesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exclusive-recipes [get]
func (h *recipeHandler) listExclusiveRecipes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListRecipesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.recipeService.ListExclusiveRecipes(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list exclusive recipes", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve exclusive recipes"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getExclusiveRecipe godoc
// @Summary Get an exclusive recipe by ID
// @Description Retrieves an exclusive recipe. The full detail payload is included only when the authenticated user owns it.
// @Tags exclusive-recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} dto.ExclusiveRecipeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Recipe not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exclusive-recipes/{id} [get]
func (h *recipeHandler) getExclusiveRecipe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recipeID := c.Param("id")

	loggedInUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	resp, err := h.recipeService.GetExclusiveRecipeByID(c.Request.Context(), recipeID, loggedInUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Recipe not found"})
			return
		}
		logger.Error("Failed to get exclusive recipe", slog.String("error", err.Error()), slog.String("recipe_id", recipeID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve exclusive recipe"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
