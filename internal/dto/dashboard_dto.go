package dto

import "github.com/shopspring/decimal"

// LowStockProduct is a product at or below its reorder threshold.
type LowStockProduct struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Stock    int    `json:"stock"`
	MinStock int    `json:"min_stock"`
}

// DashboardResponse is a read-only snapshot of inventory state, taken from
// a single consistent view of the store.
type DashboardResponse struct {
	TotalProducts    int64              `json:"total_products"`
	LowStock         int64              `json:"low_stock"`
	TotalCategories  int64              `json:"total_categories"`
	TotalOrders      int64              `json:"total_orders"`
	PendingOrders    int64              `json:"pending_orders"`
	InventoryValue   decimal.Decimal    `json:"inventory_value"`
	RecentMovements  []MovementResponse `json:"recent_movements"`
	LowStockProducts []LowStockProduct  `json:"low_stock_products"`
}
