package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ProductRequest is used for both create and update: updates are full
// overwrites of the mutable fields.
type ProductRequest struct {
	Name        string          `json:"name"        validate:"required,min=1,max=200"`
	Description *string         `json:"description"`
	SKU         *string         `json:"sku"         validate:"omitempty,min=1,max=64"`
	Price       decimal.Decimal `json:"price"       validate:"min=0"`
	Stock       int             `json:"stock"       validate:"min=0"`
	MinStock    int             `json:"min_stock"   validate:"min=0"`
	CategoryID  *string         `json:"category_id" validate:"omitempty,uuid"`
}

type CategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=120"`
	Description *string `json:"description"`
}

// ─── Filters ─────────────────────────────────────────────────────────────────

type ProductFilter struct {
	CategoryID string `form:"category_id"`
	Search     string `form:"search"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  *string         `json:"description"`
	SKU          *string         `json:"sku"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	MinStock     int             `json:"min_stock"`
	CategoryID   *string         `json:"category_id"`
	CategoryName *string         `json:"category_name"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}

type CategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
}
