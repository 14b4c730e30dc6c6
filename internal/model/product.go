package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the unit of inventory. Stock is mutated only through movement
// records or order commits (both transactional) or the explicit update
// endpoint — never overwritten as a side effect of anything else.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"index;not null"`
	Description *string
	// SKU is optional but unique when present (multiple NULLs allowed).
	SKU        *string         `gorm:"uniqueIndex"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Stock      int             `gorm:"not null;default:0"`
	MinStock   int             `gorm:"not null;default:5"`
	CategoryID *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Category *Category `gorm:"foreignKey:CategoryID"`
}
