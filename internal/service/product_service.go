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

// ProductService defines the business logic contract for products.
type ProductService interface {
	Create(ctx context.Context, req dto.ProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.ProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, req dto.ProductRequest) (*dto.ProductResponse, error) {
	if req.Price.IsNegative() {
		return nil, apierror.Invalid("price must not be negative")
	}
	if req.Stock < 0 {
		return nil, apierror.Invalid("stock must not be negative")
	}
	if err := s.checkSKU(ctx, req.SKU, uuid.Nil); err != nil {
		return nil, err
	}
	categoryID, err := parseCategoryID(req.CategoryID)
	if err != nil {
		return nil, err
	}

	p := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		SKU:         req.SKU,
		Price:       req.Price,
		Stock:       req.Stock,
		MinStock:    req.MinStock,
		CategoryID:  categoryID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apierror.Internal(err)
	}
	resp := productToResponse(p)
	return &resp, nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("product", id.String())
		}
		return nil, apierror.Internal(err)
	}
	resp := productToResponse(p)
	return &resp, nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, productToResponse(&p))
	}
	return resp, nil
}

// Update is a full overwrite of the mutable fields, including stock — this
// is the one explicit edit path allowed to set stock outside the ledger.
func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.ProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("product", id.String())
		}
		return nil, apierror.Internal(err)
	}
	if req.Price.IsNegative() {
		return nil, apierror.Invalid("price must not be negative")
	}
	if req.Stock < 0 {
		return nil, apierror.Invalid("stock must not be negative")
	}
	if err := s.checkSKU(ctx, req.SKU, id); err != nil {
		return nil, err
	}
	categoryID, err := parseCategoryID(req.CategoryID)
	if err != nil {
		return nil, err
	}

	p.Name = req.Name
	p.Description = req.Description
	p.SKU = req.SKU
	p.Price = req.Price
	p.Stock = req.Stock
	p.MinStock = req.MinStock
	p.CategoryID = categoryID
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, apierror.Internal(err)
	}
	resp := productToResponse(p)
	return &resp, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("product", id.String())
		}
		return apierror.Internal(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

// checkSKU rejects a sku already used by a different product. self is the
// product being updated (uuid.Nil on create).
func (s *productService) checkSKU(ctx context.Context, sku *string, self uuid.UUID) error {
	if sku == nil {
		return nil
	}
	existing, err := s.repo.FindBySKU(ctx, *sku)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return apierror.Internal(err)
	}
	if existing.ID != self {
		return apierror.Conflict("sku already in use")
	}
	return nil
}

func parseCategoryID(raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, apierror.Invalid("invalid category_id")
	}
	return &id, nil
}

func productToResponse(p *model.Product) dto.ProductResponse {
	var categoryID, categoryName *string
	if p.CategoryID != nil {
		s := p.CategoryID.String()
		categoryID = &s
	}
	if p.Category != nil {
		categoryName = &p.Category.Name
	}
	return dto.ProductResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		Description:  p.Description,
		SKU:          p.SKU,
		Price:        p.Price,
		Stock:        p.Stock,
		MinStock:     p.MinStock,
		CategoryID:   categoryID,
		CategoryName: categoryName,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    p.UpdatedAt.Format(time.RFC3339),
	}
}
