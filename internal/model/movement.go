package model

import (
	"time"

	"github.com/google/uuid"
)

// MovementType is the direction of a stock delta.
type MovementType string

const (
	MovementIn  MovementType = "in"
	MovementOut MovementType = "out"
)

// Valid reports whether t is a known movement type.
func (t MovementType) Valid() bool {
	return t == MovementIn || t == MovementOut
}

// Movement records one signed change to a product's stock, with the actor
// who caused it. Rows are append-only: never updated, never deleted.
type Movement struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID uuid.UUID    `gorm:"type:uuid;not null;index"`
	Type      MovementType `gorm:"type:varchar(10);not null"`
	Quantity  int          `gorm:"not null"` // always positive; Type carries the sign
	Notes     *string
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
	User    *User    `gorm:"foreignKey:UserID"`
}
