package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/YumDrop/yum_recipes_backend/internal/core/ports/services"
	"github.com/YumDrop/yum_recipes_backend/internal/dto"
	"github.com/YumDrop/yum_recipes_backend/internal/middleware"
)

// rewardHandler handles HTTP requests for user rewards.
type rewardHandler struct {
	rewardService portssvc.RewardSvc
}

// registerRewardRoutes registers all reward-related routes.
func registerRewardRoutes(rg *gin.RouterGroup, rewardService portssvc.RewardSvc) {
	h := &rewardHandler{rewardService: rewardService}

	rewards := rg.Group("/rewards")
	{
		rewards.GET("", h.listRewards)
	}
}

// listRewards godoc
// @Summary List own rewards
// @Description Retrieves all rewards awarded to the authenticated user, newest first
// @Tags rewards
// @Produce json
// @Success 200 {object} dto.ListRewardsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /rewards [get]
func (h *rewardHandler) listRewards(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	loggedInUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	rewards, err := h.rewardService.ListRewards(c.Request.Context(), loggedInUserID)
	if err != nil {
		logger.Error("Failed to list rewards", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve rewards"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRewardsResponse(rewards))
}
