package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents an application user together with their YUM token balance.
// The balance is mutated only inside the purchase transaction; every other
// operation treats it as read-only.
type User struct {
	UserID   string          `json:"userID"` // Primary Key (UUID)
	Username string          `json:"username"`
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"balance"` // YUM tokens, never negative
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Soft delete marker
}
