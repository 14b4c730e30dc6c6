package model

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of access levels. Checks go through the policy
// package rather than inline string comparison.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User stores system accounts with role-based access.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Email        *string
	Role         Role `gorm:"type:varchar(20);not null;default:'user'"`
	CreatedAt    time.Time
}
