package services

import (
	"context"
	"time"

	"github.com/YumDrop/yum_recipes_backend/internal/core/domain"
)

// TokenSvcFacade defines JWT access token operations.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user and returns it
	// with its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
