package domain

import "time"

// Reward is a collectible awarded to a user (e.g. a badge or NFT image).
// Rewards are provisioned externally; this service only reads them.
type Reward struct {
	RewardID    string    `json:"rewardID"` // Primary Key (UUID)
	UserID      string    `json:"userID"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	DateAwarded time.Time `json:"dateAwarded"`
}
