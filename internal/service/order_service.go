package service

import (
	"context"
	"errors"
	"time"

	"stockroom/internal/apierror"
	"stockroom/internal/dto"
	"stockroom/internal/model"
	"stockroom/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService interface {
	Place(ctx context.Context, req dto.PlaceOrderRequest) (*dto.PlaceOrderResult, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error)
	List(ctx context.Context, filter dto.OrderFilter) ([]dto.OrderResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req dto.UpdateOrderStatusRequest) error
}

type orderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
}

func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository) OrderService {
	return &orderService{orders: orders, products: products}
}

// Place validates and commits an order as one atomic unit:
//  1. For each item: lock the product row, check stock, snapshot the price.
//  2. Accumulate the total from the snapshots.
//  3. Insert the order with its items and decrement each product's stock.
//
// Any failure rolls back everything — no partial order, no partial decrement.
// Items may repeat a product; re-locking re-reads the stock left by the
// earlier decrement in the same transaction.
func (s *orderService) Place(ctx context.Context, req dto.PlaceOrderRequest) (*dto.PlaceOrderResult, error) {
	if len(req.Items) == 0 {
		return nil, apierror.Invalid("order must contain at least one item")
	}
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return nil, apierror.Invalid("item quantity must be positive")
		}
	}

	order := model.Order{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Status:        model.OrderPending,
		Notes:         req.Notes,
	}

	txErr := s.products.Tx(ctx, func(tx *gorm.DB) error {
		total := decimal.Zero
		for _, it := range req.Items {
			productID, err := uuid.Parse(it.ProductID)
			if err != nil {
				return apierror.Invalid("invalid product_id " + it.ProductID)
			}
			p, err := s.products.FindForUpdateTx(tx, productID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apierror.NotFound("product", it.ProductID)
				}
				return apierror.Internal(err)
			}
			if p.Stock < it.Quantity {
				return apierror.InsufficientStock(it.ProductID)
			}

			total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
			order.Items = append(order.Items, model.OrderItem{
				ProductID: productID,
				Quantity:  it.Quantity,
				Price:     p.Price,
			})

			if err := s.products.UpdateStockTx(tx, productID, p.Stock-it.Quantity); err != nil {
				return apierror.Internal(err)
			}
		}

		order.Total = total
		if err := s.orders.CreateTx(tx, &order); err != nil {
			return apierror.Internal(err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.PlaceOrderResult{ID: order.ID.String(), Total: order.Total}, nil
}

func (s *orderService) Get(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("order", id.String())
		}
		return nil, apierror.Internal(err)
	}
	resp := orderToResponse(order, true)
	return &resp, nil
}

func (s *orderService) List(ctx context.Context, filter dto.OrderFilter) ([]dto.OrderResponse, error) {
	if filter.Status != "" {
		if _, ok := model.ParseOrderStatus(filter.Status); !ok {
			return nil, apierror.Invalid("unknown order status " + filter.Status)
		}
	}
	orders, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, orderToResponse(&o, false))
	}
	return resp, nil
}

// UpdateStatus overwrites the workflow state. The target must be a known
// status, but any transition between known states is allowed.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, req dto.UpdateOrderStatusRequest) error {
	status, ok := model.ParseOrderStatus(req.Status)
	if !ok {
		return apierror.Invalid("unknown order status " + req.Status)
	}
	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("order", id.String())
		}
		return apierror.Internal(err)
	}
	return nil
}

func orderToResponse(o *model.Order, withItems bool) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:            o.ID.String(),
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Status:        string(o.Status),
		Total:         o.Total,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     o.UpdatedAt.Format(time.RFC3339),
	}
	if !withItems {
		return resp
	}
	resp.Items = make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ProductID:   item.ProductID.String(),
			ProductName: name,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return resp
}
