package model

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies products. Products reference it weakly: deleting a
// category leaves referencing products in place with a dangling id.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"index;not null"`
	Description *string
	CreatedAt   time.Time
}
