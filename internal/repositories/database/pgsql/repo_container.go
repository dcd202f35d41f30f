package pgsql

import (
	portsrepo "github.com/YumDrop/yum_recipes_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgsql repositories against the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(dbPool),
		RecipeRepo:   newPgxRecipeRepository(dbPool),
		PurchaseRepo: newPgxPurchaseRepository(dbPool),
		RewardRepo:   newPgxRewardRepository(dbPool),
	}
}
