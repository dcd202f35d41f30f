package mapping

import (
	"github.com/YumDrop/yum_recipes_backend/internal/core/domain"
	"github.com/YumDrop/yum_recipes_backend/internal/models"
)

// ToDomainReward converts a model Reward to a domain Reward.
func ToDomainReward(m models.Reward) domain.Reward {
	return domain.Reward{
		RewardID:    m.RewardID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		DateAwarded: m.DateAwarded,
	}
}

// ToDomainRewardSlice converts a slice of model Rewards to domain Rewards.
func ToDomainRewardSlice(ms []models.Reward) []domain.Reward {
	ds := make([]domain.Reward, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReward(m)
	}
	return ds
}
