package models

import "time"

// Reward represents a row of the yum_user_rewards table.
type Reward struct {
	RewardID    string    `db:"reward_id"`
	UserID      string    `db:"user_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	ImageURL    string    `db:"image_url"`
	DateAwarded time.Time `db:"date_awarded"`
}
