package services

import (
	"context"

	"github.com/YumDrop/yum_recipes_backend/internal/core/domain"
)

// RewardSvc defines read operations for user rewards.
type RewardSvc interface {
	// ListRewards retrieves all rewards awarded to the user, newest first.
	ListRewards(ctx context.Context, userID string) ([]domain.Reward, error)
}
