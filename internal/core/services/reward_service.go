package services

import (
	"context"
	"fmt"

	"github.com/YumDrop/yum_recipes_backend/internal/core/domain"
	portsrepo "github.com/YumDrop/yum_recipes_backend/internal/core/ports/repositories"
	portssvc "github.com/YumDrop/yum_recipes_backend/internal/core/ports/services"
)

// rewardService provides read access to user rewards.
type rewardService struct {
	rewardRepo portsrepo.RewardRepositoryFacade
}

// NewRewardService creates a new RewardService.
func NewRewardService(rewardRepo portsrepo.RewardRepositoryFacade) portssvc.RewardSvc {
	return &rewardService{rewardRepo: rewardRepo}
}

var _ portssvc.RewardSvc = (*rewardService)(nil)

// ListRewards retrieves all rewards awarded to the user, newest first.
func (s *rewardService) ListRewards(ctx context.Context, userID string) ([]domain.Reward, error) {
	rewards, err := s.rewardRepo.FindRewardsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}
	return rewards, nil
}
