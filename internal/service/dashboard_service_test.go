package service_test

import (
	"context"
	"testing"

	"stockroom/internal/model"
	"stockroom/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSnapshot(t *testing.T) {
	repo := &stubDashboardRepo{
		products:      8,
		lowStock:      2,
		categories:    4,
		orders:        3,
		pendingOrders: 1,
		value:         decimal.RequireFromString("15329.10"),
		movements: []model.Movement{
			{ID: uuid.New(), ProductID: uuid.New(), Type: model.MovementIn, Quantity: 5},
			{ID: uuid.New(), ProductID: uuid.New(), Type: model.MovementOut, Quantity: 2},
		},
		atRisk: []model.Product{
			{ID: uuid.New(), Name: "Laptop HP", Stock: 1, MinStock: 3},
			{ID: uuid.New(), Name: "Arroz Premium", Stock: 40, MinStock: 50},
		},
	}
	svc := service.NewDashboardService(repo, nil)

	resp, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(8), resp.TotalProducts)
	assert.Equal(t, int64(2), resp.LowStock)
	assert.Equal(t, int64(4), resp.TotalCategories)
	assert.Equal(t, int64(3), resp.TotalOrders)
	assert.Equal(t, int64(1), resp.PendingOrders)
	assert.True(t, resp.InventoryValue.Equal(decimal.RequireFromString("15329.10")))

	require.Len(t, resp.RecentMovements, 2)
	assert.Equal(t, "in", resp.RecentMovements[0].Type)

	require.Len(t, resp.LowStockProducts, 2)
	assert.Equal(t, "Laptop HP", resp.LowStockProducts[0].Name)
	assert.Equal(t, 1, resp.LowStockProducts[0].Stock)
}

func TestDashboardSnapshotCapsLists(t *testing.T) {
	repo := &stubDashboardRepo{value: decimal.Zero}
	for i := 0; i < 9; i++ {
		repo.movements = append(repo.movements, model.Movement{
			ID: uuid.New(), ProductID: uuid.New(), Type: model.MovementIn, Quantity: 1,
		})
		repo.atRisk = append(repo.atRisk, model.Product{ID: uuid.New(), Name: "p", Stock: i})
	}
	svc := service.NewDashboardService(repo, nil)

	resp, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.RecentMovements, 5)
	assert.Len(t, resp.LowStockProducts, 5)
}
