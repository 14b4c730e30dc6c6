package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity"   validate:"required,gt=0"`
}

type PlaceOrderRequest struct {
	CustomerName  string             `json:"customer_name"  validate:"required,min=1,max=200"`
	CustomerEmail *string            `json:"customer_email" validate:"omitempty,email"`
	Items         []OrderItemRequest `json:"items"          validate:"required,min=1,dive"`
	Notes         *string            `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ─── Filters ─────────────────────────────────────────────────────────────────

type OrderFilter struct {
	Status string `form:"status"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// PlaceOrderResult is returned on a successful commit.
type PlaceOrderResult struct {
	ID    string          `json:"id"`
	Total decimal.Decimal `json:"total"`
}

type OrderItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	CustomerName  string              `json:"customer_name"`
	CustomerEmail *string             `json:"customer_email"`
	Status        string              `json:"status"`
	Total         decimal.Decimal     `json:"total"`
	Notes         *string             `json:"notes"`
	Items         []OrderItemResponse `json:"items,omitempty"`
	CreatedAt     string              `json:"created_at"`
	UpdatedAt     string              `json:"updated_at"`
}
