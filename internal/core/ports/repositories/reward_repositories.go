package repositories

import (
	"context"

	"github.com/YumDrop/yum_recipes_backend/internal/core/domain"
)

// RewardReader defines read operations for user rewards.
type RewardReader interface {
	// FindRewardsByUser retrieves all rewards awarded to a user, newest first.
	FindRewardsByUser(ctx context.Context, userID string) ([]domain.Reward, error)
}

// RewardRepositoryFacade combines all reward-related repository interfaces.
type RewardRepositoryFacade interface {
	RewardReader
}
