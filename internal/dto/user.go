package dto

import (
	"github.com/YumDrop/yum_recipes_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateUserRequest defines the data required to provision a user.
// InitialBalance is optional and defaults to zero YUM.
type CreateUserRequest struct {
	Username       string           `json:"username" binding:"required,min=3,max=50"`
	Password       string           `json:"password" binding:"required,min=8"`
	Name           string           `json:"name" binding:"required,notblank"`
	InitialBalance *decimal.Decimal `json:"initialBalance,omitempty" binding:"omitempty,decimalgtezero"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name *string `json:"name"` // Only name is updatable for now
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// UserResponse is the public representation of a user, including their
// current YUM balance.
type UserResponse struct {
	UserID   string          `json:"userID"`
	Username string          `json:"username"`
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"balance"`
}

// UserSummaryResponse is the listing representation of a user. Balances are
// private to the account holder and are never included here.
type UserSummaryResponse struct {
	UserID   string `json:"userID"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserSummaryResponse `json:"users"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Name:     user.Name,
		Balance:  user.Balance,
	}
}

// ToUserSummaryResponse converts a domain.User to a UserSummaryResponse DTO.
func ToUserSummaryResponse(user *domain.User) UserSummaryResponse {
	return UserSummaryResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Name:     user.Name,
	}
}

// ToListUsersResponse converts a slice of domain.User to ListUsersResponse.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserSummaryResponse, len(users))
	for i, user := range users {
		userResponses[i] = ToUserSummaryResponse(&user)
	}
	return ListUsersResponse{
		Users: userResponses,
	}
}
