package service_test

import (
	"context"
	"sync"
	"testing"

	"stockroom/internal/apierror"
	"stockroom/internal/dto"
	"stockroom/internal/model"
	"stockroom/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduct(repo *stubProductRepo, name string, stock int) uuid.UUID {
	return repo.add(&model.Product{
		Name:  name,
		Price: decimal.RequireFromString("10.00"),
		Stock: stock,
	})
}

func TestRecordMovementIn(t *testing.T) {
	products := newStubProductRepo()
	movements := newStubMovementRepo()
	id := seedProduct(products, "Widget", 10)
	svc := service.NewMovementService(movements, products)

	res, err := svc.Record(context.Background(), uuid.New(), dto.RecordMovementRequest{
		ProductID: id.String(),
		Type:      "in",
		Quantity:  5,
	})
	require.NoError(t, err)
	assert.Equal(t, 15, res.NewStock)
	assert.Equal(t, 15, products.stock(id))
	require.Len(t, movements.movements, 1)
	assert.Equal(t, model.MovementIn, movements.movements[0].Type)
	assert.Equal(t, 5, movements.movements[0].Quantity)
}

func TestRecordMovementOut(t *testing.T) {
	products := newStubProductRepo()
	movements := newStubMovementRepo()
	id := seedProduct(products, "Widget", 10)
	svc := service.NewMovementService(movements, products)

	res, err := svc.Record(context.Background(), uuid.New(), dto.RecordMovementRequest{
		ProductID: id.String(),
		Type:      "out",
		Quantity:  7,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.NewStock)
	assert.Equal(t, 3, products.stock(id))
}

func TestRecordMovementInsufficientStock(t *testing.T) {
	products := newStubProductRepo()
	movements := newStubMovementRepo()
	id := seedProduct(products, "Widget", 10)
	svc := service.NewMovementService(movements, products)

	// Drain to 3, then try to take 5 more.
	_, err := svc.Record(context.Background(), uuid.New(), dto.RecordMovementRequest{
		ProductID: id.String(), Type: "out", Quantity: 7,
	})
	require.NoError(t, err)

	_, err = svc.Record(context.Background(), uuid.New(), dto.RecordMovementRequest{
		ProductID: id.String(), Type: "out", Quantity: 5,
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindInsufficientStock, apierror.KindOf(err))

	// The failed movement left no trace: stock unchanged, no ledger entry.
	assert.Equal(t, 3, products.stock(id))
	assert.Len(t, movements.movements, 1)
}

func TestRecordMovementValidation(t *testing.T) {
	products := newStubProductRepo()
	svc := service.NewMovementService(newStubMovementRepo(), products)
	actor := uuid.New()

	_, err := svc.Record(context.Background(), actor, dto.RecordMovementRequest{
		ProductID: uuid.NewString(), Type: "sideways", Quantity: 1,
	})
	assert.Equal(t, apierror.KindInvalid, apierror.KindOf(err))

	_, err = svc.Record(context.Background(), actor, dto.RecordMovementRequest{
		ProductID: uuid.NewString(), Type: "in", Quantity: 0,
	})
	assert.Equal(t, apierror.KindInvalid, apierror.KindOf(err))

	_, err = svc.Record(context.Background(), actor, dto.RecordMovementRequest{
		ProductID: "not-a-uuid", Type: "in", Quantity: 1,
	})
	assert.Equal(t, apierror.KindInvalid, apierror.KindOf(err))

	_, err = svc.Record(context.Background(), actor, dto.RecordMovementRequest{
		ProductID: uuid.NewString(), Type: "out", Quantity: 1,
	})
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
}

func TestRecordMovementConcurrentDrain(t *testing.T) {
	products := newStubProductRepo()
	movements := newStubMovementRepo()
	id := seedProduct(products, "Widget", 5)
	svc := service.NewMovementService(movements, products)

	// Ten concurrent single-unit drains against stock 5: exactly five must
	// succeed and five must fail, never overselling.
	const attempts = 10
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Record(context.Background(), uuid.New(), dto.RecordMovementRequest{
				ProductID: id.String(), Type: "out", Quantity: 1,
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.Equal(t, apierror.KindInsufficientStock, apierror.KindOf(err))
		}
	}
	assert.Equal(t, 5, succeeded)
	assert.Equal(t, 0, products.stock(id))
	assert.Len(t, movements.movements, 5)
}

func TestListMovementsFiltersByProduct(t *testing.T) {
	products := newStubProductRepo()
	movements := newStubMovementRepo()
	first := seedProduct(products, "Widget", 10)
	second := seedProduct(products, "Gadget", 10)
	svc := service.NewMovementService(movements, products)
	actor := uuid.New()

	_, err := svc.Record(context.Background(), actor, dto.RecordMovementRequest{
		ProductID: first.String(), Type: "in", Quantity: 1,
	})
	require.NoError(t, err)
	_, err = svc.Record(context.Background(), actor, dto.RecordMovementRequest{
		ProductID: second.String(), Type: "in", Quantity: 2,
	})
	require.NoError(t, err)

	all, err := svc.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	only, err := svc.List(context.Background(), &first)
	require.NoError(t, err)
	require.Len(t, only, 1)
	assert.Equal(t, first.String(), only[0].ProductID)
}
