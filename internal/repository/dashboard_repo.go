package repository

import (
	"context"

	"stockroom/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardRepository groups the read-only rollup queries. The service runs
// them through Tx so the whole snapshot comes from one consistent view.
type DashboardRepository interface {
	Tx(ctx context.Context, fn func(tx *gorm.DB) error) error
	CountProducts(tx *gorm.DB) (int64, error)
	CountLowStock(tx *gorm.DB) (int64, error)
	CountCategories(tx *gorm.DB) (int64, error)
	CountOrders(tx *gorm.DB) (int64, error)
	CountOrdersByStatus(tx *gorm.DB, status model.OrderStatus) (int64, error)
	InventoryValue(tx *gorm.DB) (decimal.Decimal, error)
	RecentMovements(tx *gorm.DB, limit int) ([]model.Movement, error)
	LowStockProducts(tx *gorm.DB, limit int) ([]model.Product, error)
}

type dashboardRepo struct{ db *gorm.DB }

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepo{db: db}
}

func (r *dashboardRepo) Tx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *dashboardRepo) CountProducts(tx *gorm.DB) (int64, error) {
	var n int64
	err := tx.Model(&model.Product{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepo) CountLowStock(tx *gorm.DB) (int64, error) {
	var n int64
	err := tx.Model(&model.Product{}).Where("stock <= min_stock").Count(&n).Error
	return n, err
}

func (r *dashboardRepo) CountCategories(tx *gorm.DB) (int64, error) {
	var n int64
	err := tx.Model(&model.Category{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepo) CountOrders(tx *gorm.DB) (int64, error) {
	var n int64
	err := tx.Model(&model.Order{}).Count(&n).Error
	return n, err
}

func (r *dashboardRepo) CountOrdersByStatus(tx *gorm.DB, status model.OrderStatus) (int64, error) {
	var n int64
	err := tx.Model(&model.Order{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *dashboardRepo) InventoryValue(tx *gorm.DB) (decimal.Decimal, error) {
	var value decimal.Decimal
	err := tx.Model(&model.Product{}).
		Select("COALESCE(SUM(price * stock), 0)").
		Scan(&value).Error
	return value, err
}

func (r *dashboardRepo) RecentMovements(tx *gorm.DB, limit int) ([]model.Movement, error) {
	var movements []model.Movement
	err := tx.Model(&model.Movement{}).
		Preload("Product").
		Order("created_at DESC").
		Limit(limit).
		Find(&movements).Error
	return movements, err
}

func (r *dashboardRepo) LowStockProducts(tx *gorm.DB, limit int) ([]model.Product, error) {
	var products []model.Product
	err := tx.Model(&model.Product{}).
		Where("stock <= min_stock").
		Order("stock ASC").
		Limit(limit).
		Find(&products).Error
	return products, err
}
