package services

// ServiceContainer holds all service facades the handlers depend on.
type ServiceContainer struct {
	User     UserSvcFacade
	Recipe   RecipeSvcFacade
	Purchase PurchaseSvc
	Reward   RewardSvc
	Token    TokenSvcFacade
}
