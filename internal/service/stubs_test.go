package service_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"stockroom/internal/dto"
	"stockroom/internal/model"
	"stockroom/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubUserRepo is an in-memory UserRepository for testing.
type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

// stubCategoryRepo is an in-memory CategoryRepository for testing.
type stubCategoryRepo struct {
	categories map[uuid.UUID]*model.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[uuid.UUID]*model.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	r.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*model.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) List(_ context.Context) ([]model.Category, error) {
	out := make([]model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *model.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

var _ repository.CategoryRepository = (*stubCategoryRepo)(nil)

// stubProductRepo emulates the transactional product store. Tx serializes
// callbacks with a mutex (standing in for the row lock) and snapshots state
// so a failed callback rolls everything back, like a real transaction.
type stubProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*model.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) add(p *model.Product) uuid.UUID {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return p.ID
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now()
	p.CreatedAt, p.UpdatedAt = now, now
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) FindBySKU(_ context.Context, sku string) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.SKU != nil && *p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) List(_ context.Context, filter dto.ProductFilter) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.CategoryID != "" {
			if p.CategoryID == nil || p.CategoryID.String() != filter.CategoryID {
				continue
			}
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			name := strings.ToLower(p.Name)
			sku := ""
			if p.SKU != nil {
				sku = strings.ToLower(*p.SKU)
			}
			if !strings.Contains(name, needle) && !strings.Contains(sku, needle) {
				continue
			}
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) Tx(_ context.Context, fn func(tx *gorm.DB) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make(map[uuid.UUID]*model.Product, len(r.products))
	for id, p := range r.products {
		cp := *p
		snapshot[id] = &cp
	}
	if err := fn(nil); err != nil {
		r.products = snapshot
		return err
	}
	return nil
}

func (r *stubProductRepo) FindForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) UpdateStockTx(_ *gorm.DB, id uuid.UUID, newStock int) error {
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Stock = newStock
	p.UpdatedAt = time.Now()
	return nil
}

// stock reads the committed stock level outside any transaction.
func (r *stubProductRepo) stock(id uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.products[id].Stock
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// stubMovementRepo captures created ledger entries for assertion.
type stubMovementRepo struct {
	movements []model.Movement
}

func newStubMovementRepo() *stubMovementRepo { return &stubMovementRepo{} }

func (r *stubMovementRepo) CreateTx(_ *gorm.DB, m *model.Movement) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	r.movements = append(r.movements, *m)
	return nil
}

func (r *stubMovementRepo) List(_ context.Context, productID *uuid.UUID) ([]model.Movement, error) {
	out := make([]model.Movement, 0, len(r.movements))
	for _, m := range r.movements {
		if productID != nil && m.ProductID != *productID {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

var _ repository.MovementRepository = (*stubMovementRepo)(nil)

// stubOrderRepo is an in-memory OrderRepository for testing.
type stubOrderRepo struct {
	orders map[uuid.UUID]*model.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[uuid.UUID]*model.Order)}
}

func (r *stubOrderRepo) CreateTx(_ *gorm.DB, o *model.Order) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	now := time.Now()
	o.CreatedAt, o.UpdatedAt = now, now
	for i := range o.Items {
		if o.Items[i].ID == uuid.Nil {
			o.Items[i].ID = uuid.New()
		}
		o.Items[i].OrderID = o.ID
	}
	cp := *o
	cp.Items = append([]model.OrderItem(nil), o.Items...)
	r.orders[o.ID] = &cp
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *o
	cp.Items = append([]model.OrderItem(nil), o.Items...)
	return &cp, nil
}

func (r *stubOrderRepo) List(_ context.Context, filter dto.OrderFilter) ([]model.Order, error) {
	out := make([]model.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if filter.Status != "" && string(o.Status) != filter.Status {
			continue
		}
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status model.OrderStatus) error {
	o, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	return nil
}

var _ repository.OrderRepository = (*stubOrderRepo)(nil)

// stubDashboardRepo serves canned rollup values.
type stubDashboardRepo struct {
	products      int64
	lowStock      int64
	categories    int64
	orders        int64
	pendingOrders int64
	value         decimal.Decimal
	movements     []model.Movement
	atRisk        []model.Product
}

func (r *stubDashboardRepo) Tx(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}
func (r *stubDashboardRepo) CountProducts(_ *gorm.DB) (int64, error)   { return r.products, nil }
func (r *stubDashboardRepo) CountLowStock(_ *gorm.DB) (int64, error)   { return r.lowStock, nil }
func (r *stubDashboardRepo) CountCategories(_ *gorm.DB) (int64, error) { return r.categories, nil }
func (r *stubDashboardRepo) CountOrders(_ *gorm.DB) (int64, error)     { return r.orders, nil }
func (r *stubDashboardRepo) CountOrdersByStatus(_ *gorm.DB, status model.OrderStatus) (int64, error) {
	if status == model.OrderPending {
		return r.pendingOrders, nil
	}
	return 0, nil
}
func (r *stubDashboardRepo) InventoryValue(_ *gorm.DB) (decimal.Decimal, error) {
	return r.value, nil
}
func (r *stubDashboardRepo) RecentMovements(_ *gorm.DB, limit int) ([]model.Movement, error) {
	if len(r.movements) > limit {
		return r.movements[:limit], nil
	}
	return r.movements, nil
}
func (r *stubDashboardRepo) LowStockProducts(_ *gorm.DB, limit int) ([]model.Product, error) {
	if len(r.atRisk) > limit {
		return r.atRisk[:limit], nil
	}
	return r.atRisk, nil
}

var _ repository.DashboardRepository = (*stubDashboardRepo)(nil)
