package services

import (
	portsrepo "github.com/YumDrop/yum_recipes_backend/internal/core/ports/repositories"
	portssvc "github.com/YumDrop/yum_recipes_backend/internal/core/ports/services"
	"github.com/YumDrop/yum_recipes_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Recipe = NewRecipeService(repos.RecipeRepo, repos.PurchaseRepo)
	container.Purchase = NewPurchaseService(repos.PurchaseRepo, repos.UserRepo, repos.RecipeRepo)
	container.Reward = NewRewardService(repos.RewardRepo)
	container.Token = NewTokenService(cfg)

	return container
}
