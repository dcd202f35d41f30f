package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a row of the yum_users table.
// Includes username and password hash for authentication.
type User struct {
	UserID       string          `db:"user_id"`
	Username     string          `db:"username"`
	PasswordHash string          `db:"password_hash"`
	Name         string          `db:"name"`
	Balance      decimal.Decimal `db:"balance"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
