package repository

import (
	"context"

	"stockroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// movementListLimit caps the ledger listing to the most recent entries.
const movementListLimit = 100

type MovementRepository interface {
	// CreateTx inserts a ledger entry inside the caller's transaction, so the
	// entry and the stock update it describes commit together or not at all.
	CreateTx(tx *gorm.DB, m *model.Movement) error
	List(ctx context.Context, productID *uuid.UUID) ([]model.Movement, error)
}

type movementRepo struct{ db *gorm.DB }

func NewMovementRepository(db *gorm.DB) MovementRepository {
	return &movementRepo{db: db}
}

func (r *movementRepo) CreateTx(tx *gorm.DB, m *model.Movement) error {
	return tx.Create(m).Error
}

func (r *movementRepo) List(ctx context.Context, productID *uuid.UUID) ([]model.Movement, error) {
	q := r.db.WithContext(ctx).Model(&model.Movement{}).
		Preload("Product").
		Preload("User")
	if productID != nil {
		q = q.Where("product_id = ?", *productID)
	}

	var movements []model.Movement
	err := q.Order("created_at DESC").Limit(movementListLimit).Find(&movements).Error
	return movements, err
}
