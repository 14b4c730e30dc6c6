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
	"gorm.io/gorm"
)

// MovementService is the append-only stock ledger: every stock delta goes
// through Record, which couples the ledger entry and the stock overwrite in
// one transaction.
type MovementService interface {
	Record(ctx context.Context, actorID uuid.UUID, req dto.RecordMovementRequest) (*dto.MovementResult, error)
	List(ctx context.Context, productID *uuid.UUID) ([]dto.MovementResponse, error)
}

type movementService struct {
	movements repository.MovementRepository
	products  repository.ProductRepository
}

func NewMovementService(movements repository.MovementRepository, products repository.ProductRepository) MovementService {
	return &movementService{movements: movements, products: products}
}

// Record applies a signed stock delta:
//  1. lock the product row
//  2. compute new stock; reject if it would go negative
//  3. insert the movement and overwrite the stock together
//
// The row lock makes the read-check-write sequence atomic against concurrent
// writers on the same product, so two drains cannot both pass the check.
func (s *movementService) Record(ctx context.Context, actorID uuid.UUID, req dto.RecordMovementRequest) (*dto.MovementResult, error) {
	movType := model.MovementType(req.Type)
	if !movType.Valid() {
		return nil, apierror.Invalid("movement type must be \"in\" or \"out\"")
	}
	if req.Quantity <= 0 {
		return nil, apierror.Invalid("quantity must be positive")
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, apierror.Invalid("invalid product_id")
	}

	var result *dto.MovementResult
	txErr := s.products.Tx(ctx, func(tx *gorm.DB) error {
		p, err := s.products.FindForUpdateTx(tx, productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.NotFound("product", productID.String())
			}
			return apierror.Internal(err)
		}

		newStock := p.Stock + req.Quantity
		if movType == model.MovementOut {
			newStock = p.Stock - req.Quantity
		}
		if newStock < 0 {
			return apierror.InsufficientStock(productID.String())
		}

		m := &model.Movement{
			ProductID: productID,
			Type:      movType,
			Quantity:  req.Quantity,
			Notes:     req.Notes,
			UserID:    &actorID,
		}
		if err := s.movements.CreateTx(tx, m); err != nil {
			return apierror.Internal(err)
		}
		if err := s.products.UpdateStockTx(tx, productID, newStock); err != nil {
			return apierror.Internal(err)
		}

		result = &dto.MovementResult{ID: m.ID.String(), NewStock: newStock}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return result, nil
}

func (s *movementService) List(ctx context.Context, productID *uuid.UUID) ([]dto.MovementResponse, error) {
	movements, err := s.movements.List(ctx, productID)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		resp = append(resp, movementToResponse(&m))
	}
	return resp, nil
}

func movementToResponse(m *model.Movement) dto.MovementResponse {
	productName := ""
	if m.Product != nil {
		productName = m.Product.Name
	}
	var username *string
	if m.User != nil {
		username = &m.User.Username
	}
	return dto.MovementResponse{
		ID:          m.ID.String(),
		ProductID:   m.ProductID.String(),
		ProductName: productName,
		Type:        string(m.Type),
		Quantity:    m.Quantity,
		Notes:       m.Notes,
		Username:    username,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}
