package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/YumDrop/yum_recipes_backend/internal/core/ports/services"
	"github.com/YumDrop/yum_recipes_backend/internal/core/services"
	"github.com/YumDrop/yum_recipes_backend/internal/dto"
	"github.com/YumDrop/yum_recipes_backend/internal/middleware"
	"github.com/YumDrop/yum_recipes_backend/internal/platform/config"
)

// Error kinds reported in the purchase outcome payload. These are part of
// the API contract with clients; do not rename casually.
const (
	errKindUserNotFound        = "USER_NOT_FOUND"
	errKindRecipeUnavailable   = "RECIPE_UNAVAILABLE"
	errKindInsufficientBalance = "INSUFFICIENT_BALANCE"
	errKindAlreadyOwned        = "ALREADY_OWNED"
	errKindPurchaseFailed      = "PURCHASE_FAILED"
)

// purchaseHandler handles HTTP requests for purchasing exclusive recipes.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvc
}

// newPurchaseHandler creates a new purchaseHandler.
func newPurchaseHandler(ps portssvc.PurchaseSvc) *purchaseHandler {
	return &purchaseHandler{
		purchaseService: ps,
	}
}

// registerPurchaseRoutes registers all purchase-related routes.
func registerPurchaseRoutes(rg *gin.RouterGroup, cfg *config.Config, purchaseService portssvc.PurchaseSvc) {
	h := newPurchaseHandler(purchaseService)

	// The purchase endpoint mutates balances, so it gets its own rate limit
	rate, err := limiter.NewRateFromFormatted(cfg.PurchaseRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("30-M")
	}
	purchaseLimiter := limiter.New(memory.NewStore(), rate)

	purchases := rg.Group("/purchases")
	{
		purchases.POST("", middleware.RateLimit(purchaseLimiter), h.purchaseRecipe)
		purchases.GET("", h.listPurchases)
		purchases.GET("/ownership/:recipeID", h.checkOwnership)
	}
}

// purchaseRecipe godoc
// @Summary Purchase an exclusive recipe
// @Description Spends YUM tokens to buy an exclusive recipe. The balance debit and the purchase record commit atomically; on any failure the balance is untouched.
// @Tags purchases
// @Accept json
// @Produce json
// @Param purchase body dto.PurchaseRequest true "Recipe to purchase"
// @Success 200 {object} dto.PurchaseOutcome
// @Failure 400 {object} dto.PurchaseOutcome "Invalid request"
// @Failure 401 {object} ErrorResponse
// @Failure 402 {object} dto.PurchaseOutcome "Insufficient balance"
// @Failure 404 {object} dto.PurchaseOutcome "User or recipe not found"
// @Failure 409 {object} dto.PurchaseOutcome "Recipe already owned"
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Failure 502 {object} dto.PurchaseOutcome "Purchase transaction failed"
// @Security BearerAuth
// @Router /purchases [post]
func (h *purchaseHandler) purchaseRecipe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	loggedInUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.PurchaseOutcome{
			Success: false,
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	purchase, newBalance, err := h.purchaseService.PurchaseRecipe(c.Request.Context(), loggedInUserID, req.RecipeID)
	if err != nil {
		status, kind := purchaseFailureStatus(err)
		if kind == errKindPurchaseFailed {
			logger.Error("Purchase failed", slog.String("error", err.Error()), slog.String("recipe_id", req.RecipeID))
		}
		c.JSON(status, dto.PurchaseOutcome{
			Success:   false,
			ErrorKind: kind,
			Message:   err.Error(),
		})
		return
	}

	resp := dto.ToPurchaseResponse(purchase)
	c.JSON(http.StatusOK, dto.PurchaseOutcome{
		Success:    true,
		NewBalance: &newBalance,
		Purchase:   &resp,
	})
}

// purchaseFailureStatus maps a purchase service error to an HTTP status and
// an error kind for the outcome payload.
func purchaseFailureStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return http.StatusNotFound, errKindUserNotFound
	case errors.Is(err, services.ErrRecipeUnavailable):
		return http.StatusNotFound, errKindRecipeUnavailable
	case errors.Is(err, services.ErrInsufficientBalance):
		return http.StatusPaymentRequired, errKindInsufficientBalance
	case errors.Is(err, services.ErrAlreadyOwned):
		return http.StatusConflict, errKindAlreadyOwned
	default:
		return http.StatusBadGateway, errKindPurchaseFailed
	}
}

// listPurchases godoc
// @Summary List own purchases
// @Description Retrieves a token-paginated page of the authenticated user's purchases, newest first
// @Tags purchases
// @Produce json
// @Param limit query int false "Max results" default(20)
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListPurchasesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	loggedInUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListPurchasesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.purchaseService.ListPurchases(c.Request.Context(), loggedInUserID, params)
	if err != nil {
		logger.Error("Failed to list purchases", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve purchases"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// checkOwnership godoc
// @Summary Check recipe ownership
// @Description Reports whether the authenticated user owns the exclusive recipe
// @Tags purchases
// @Produce json
// @Param recipeID path string true "Recipe ID"
// @Success 200 {object} dto.OwnershipResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchases/ownership/{recipeID} [get]
func (h *purchaseHandler) checkOwnership(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recipeID := c.Param("recipeID")

	loggedInUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	owned, err := h.purchaseService.HasPurchased(c.Request.Context(), loggedInUserID, recipeID)
	if err != nil {
		logger.Error("Failed to check ownership", slog.String("error", err.Error()), slog.String("recipe_id", recipeID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to check ownership"})
		return
	}

	c.JSON(http.StatusOK, dto.OwnershipResponse{
		RecipeID: recipeID,
		Owned:    owned,
	})
}
