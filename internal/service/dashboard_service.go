package service

import (
	"context"
	"encoding/json"
	"time"

	"stockroom/internal/apierror"
	"stockroom/internal/dto"
	"stockroom/internal/model"
	"stockroom/internal/repository"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	dashboardCacheKey = "dashboard:snapshot"
	dashboardCacheTTL = 30 * time.Second

	// Top-N window for the recent-activity and at-risk lists.
	dashboardListLimit = 5
)

// DashboardService produces a read-only rollup of inventory state. All
// sub-queries run in one transaction so the snapshot is internally
// consistent; a short-lived cache in front tolerates advisory staleness.
type DashboardService interface {
	Snapshot(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	repo repository.DashboardRepository
	rdb  *redis.Client
}

func NewDashboardService(repo repository.DashboardRepository, rdb *redis.Client) DashboardService {
	return &dashboardService{repo: repo, rdb: rdb}
}

func (s *dashboardService) Snapshot(ctx context.Context) (*dto.DashboardResponse, error) {
	// Cache first — best effort, a miss or a broken payload falls through.
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
			var resp dto.DashboardResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return &resp, nil
			}
		}
	}

	var resp dto.DashboardResponse
	txErr := s.repo.Tx(ctx, func(tx *gorm.DB) error {
		var err error
		if resp.TotalProducts, err = s.repo.CountProducts(tx); err != nil {
			return err
		}
		if resp.LowStock, err = s.repo.CountLowStock(tx); err != nil {
			return err
		}
		if resp.TotalCategories, err = s.repo.CountCategories(tx); err != nil {
			return err
		}
		if resp.TotalOrders, err = s.repo.CountOrders(tx); err != nil {
			return err
		}
		if resp.PendingOrders, err = s.repo.CountOrdersByStatus(tx, model.OrderPending); err != nil {
			return err
		}
		if resp.InventoryValue, err = s.repo.InventoryValue(tx); err != nil {
			return err
		}

		movements, err := s.repo.RecentMovements(tx, dashboardListLimit)
		if err != nil {
			return err
		}
		resp.RecentMovements = make([]dto.MovementResponse, 0, len(movements))
		for _, m := range movements {
			resp.RecentMovements = append(resp.RecentMovements, movementToResponse(&m))
		}

		atRisk, err := s.repo.LowStockProducts(tx, dashboardListLimit)
		if err != nil {
			return err
		}
		resp.LowStockProducts = make([]dto.LowStockProduct, 0, len(atRisk))
		for _, p := range atRisk {
			resp.LowStockProducts = append(resp.LowStockProducts, dto.LowStockProduct{
				ID:       p.ID.String(),
				Name:     p.Name,
				Stock:    p.Stock,
				MinStock: p.MinStock,
			})
		}
		return nil
	})
	if txErr != nil {
		return nil, apierror.Internal(txErr)
	}

	// Populate cache — best effort, ignore errors.
	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(ctx, dashboardCacheKey, b, dashboardCacheTTL).Err()
		}
	}

	return &resp, nil
}
