package pgsql

import (
	"context"
	"fmt"

	"github.com/YumDrop/yum_recipes_backend/internal/core/domain"
	portsrepo "github.com/YumDrop/yum_recipes_backend/internal/core/ports/repositories"
	"github.com/YumDrop/yum_recipes_backend/internal/models"
	"github.com/YumDrop/yum_recipes_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRewardRepository struct {
	BaseRepository
}

// newPgxRewardRepository creates a new repository for reward data.
func newPgxRewardRepository(pool *pgxpool.Pool) portsrepo.RewardRepositoryFacade {
	return &PgxRewardRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxRewardRepository implements portsrepo.RewardRepositoryFacade
var _ portsrepo.RewardRepositoryFacade = (*PgxRewardRepository)(nil)

// FindRewardsByUser retrieves all rewards awarded to a user, newest first.
func (r *PgxRewardRepository) FindRewardsByUser(ctx context.Context, userID string) ([]domain.Reward, error) {
	query := `
		SELECT reward_id, user_id, title, description, image_url, date_awarded
		FROM yum_user_rewards
		WHERE user_id = $1
		ORDER BY date_awarded DESC, reward_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rewards for user %s: %w", userID, err)
	}
	defer rows.Close()

	rewards := []models.Reward{}
	for rows.Next() {
		var m models.Reward
		err := rows.Scan(&m.RewardID, &m.UserID, &m.Title, &m.Description, &m.ImageURL, &m.DateAwarded)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reward row for user %s: %w", userID, err)
		}
		rewards = append(rewards, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reward rows for user %s: %w", userID, err)
	}

	return mapping.ToDomainRewardSlice(rewards), nil
}
