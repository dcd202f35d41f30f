package dto

import (
	"time"

	"github.com/YumDrop/yum_recipes_backend/internal/core/domain"
)

// RewardResponse is the public representation of a user reward.
type RewardResponse struct {
	RewardID    string    `json:"rewardID"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	DateAwarded time.Time `json:"dateAwarded"`
}

// ListRewardsResponse wraps the user's rewards.
type ListRewardsResponse struct {
	Rewards []RewardResponse `json:"rewards"`
}

// ToListRewardsResponse converts a slice of domain.Reward to the list DTO.
func ToListRewardsResponse(rewards []domain.Reward) ListRewardsResponse {
	responses := make([]RewardResponse, len(rewards))
	for i, r := range rewards {
		responses[i] = RewardResponse{
			RewardID:    r.RewardID,
			Title:       r.Title,
			Description: r.Description,
			ImageURL:    r.ImageURL,
			DateAwarded: r.DateAwarded,
		}
	}
	return ListRewardsResponse{Rewards: responses}
}
