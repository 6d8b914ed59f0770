package usecase

import (
	"context"
	"errors"
	"testing"

	"crm_assistencia/internal/domain/entities"
	mock_interfaces "crm_assistencia/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProductUseCase_CreateValidation(t *testing.T) {
	uc := NewProductUseCase(newTestStore(), nil, nil)

	tests := []struct {
		name string
		in   ProductInput
	}{
		{name: "blank name", in: ProductInput{Name: " ", Quantity: 1, Price: decimal.NewFromInt(10)}},
		{name: "negative quantity", in: ProductInput{Name: "HD", Quantity: -1, Price: decimal.NewFromInt(10)}},
		{name: "negative minimum", in: ProductInput{Name: "HD", MinQuantity: -1, Price: decimal.NewFromInt(10)}},
		{name: "zero price", in: ProductInput{Name: "HD", Quantity: 1}},
		{name: "unknown kind", in: ProductInput{Name: "HD", Kind: "service", Price: decimal.NewFromInt(10)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), tt.in)
			if !errors.Is(err, entities.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}

	p, err := uc.Create(context.Background(), ProductInput{Name: "Windows 11 Pro", Quantity: 50, MinQuantity: 10, Price: decimal.RequireFromString("350.00")})
	require.NoError(t, err)
	assert.Equal(t, entities.ProductKindPhysical, p.Kind)
}

func TestProductUseCase_ListAndLowStock(t *testing.T) {
	store := newTestStore()
	uc := NewProductUseCase(store, nil, nil)
	ctx := context.Background()
	seedProduct(t, store, "HD 1TB", 15, 5, "250.00")
	seedProduct(t, store, "Memória RAM 8GB", 3, 5, "180.00")
	ssd := seedProduct(t, store, "SSD 500GB", 3, 3, "320.00")

	low, err := uc.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "Memória RAM 8GB", low[0].Name)
	assert.Equal(t, ssd.ID, low[1].ID, "quantity equal to the minimum counts as low")

	found, err := uc.List(ctx, ProductFilter{Search: "ssd"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, ssd.ID, found[0].ID)

	virtual, err := uc.List(ctx, ProductFilter{Kind: entities.ProductKindVirtual})
	require.NoError(t, err)
	assert.Empty(t, virtual)
}

func TestProductUseCase_RegisterStockMovement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := newTestStore()
	publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
	metrics := mock_interfaces.NewMockIMetricsRecorder(ctrl)
	uc := NewProductUseCase(store, publisher, metrics)
	ctx := context.Background()
	ram := seedProduct(t, store, "Memória RAM 8GB", 6, 5, "180.00")

	t.Run("entry adds to stock", func(t *testing.T) {
		metrics.EXPECT().StockMoved(entities.MovementIn, 4)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.DomainEvent) error {
			assert.Equal(t, entities.EventStockMovementRegistered, e.Type)
			return nil
		})

		m, p, err := uc.RegisterStockMovement(ctx, StockMovementInput{ProductID: ram.ID, Direction: entities.MovementIn, Quantity: 4, Reason: "Compra fornecedor"})
		require.NoError(t, err)
		assert.Equal(t, 10, p.Quantity)
		assert.Equal(t, "Compra fornecedor", m.Reason)
		assert.Empty(t, m.SaleID)
		assert.Equal(t, testNow, m.CreatedAt)
	})

	t.Run("withdrawal below minimum raises low stock", func(t *testing.T) {
		metrics.EXPECT().StockMoved(entities.MovementOut, 6)
		var types []entities.EventType
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.DomainEvent) error {
			types = append(types, e.Type)
			return nil
		}).Times(2)

		m, p, err := uc.RegisterStockMovement(ctx, StockMovementInput{ProductID: ram.ID, Direction: entities.MovementOut, Quantity: 6})
		require.NoError(t, err)
		assert.Equal(t, 4, p.Quantity)
		assert.Equal(t, "Ajuste manual", m.Reason)
		assert.Equal(t, []entities.EventType{entities.EventStockMovementRegistered, entities.EventStockLow}, types)
	})

	t.Run("withdrawal beyond stock is rejected atomically", func(t *testing.T) {
		before := snapshotOf(t, store)
		_, _, err := uc.RegisterStockMovement(ctx, StockMovementInput{ProductID: ram.ID, Direction: entities.MovementOut, Quantity: 5})
		require.ErrorIs(t, err, entities.ErrInsufficientStock)
		requireUnchanged(t, before, snapshotOf(t, store))
	})

	t.Run("invalid input", func(t *testing.T) {
		_, _, err := uc.RegisterStockMovement(ctx, StockMovementInput{ProductID: ram.ID, Direction: "sideways", Quantity: 1})
		assert.ErrorIs(t, err, entities.ErrValidation)
		_, _, err = uc.RegisterStockMovement(ctx, StockMovementInput{ProductID: ram.ID, Direction: entities.MovementIn, Quantity: 0})
		assert.ErrorIs(t, err, entities.ErrValidation)
		_, _, err = uc.RegisterStockMovement(ctx, StockMovementInput{ProductID: "ghost", Direction: entities.MovementIn, Quantity: 1})
		assert.ErrorIs(t, err, entities.ErrNotFound)
	})

	t.Run("ledger is newest first", func(t *testing.T) {
		all, err := uc.ListStockMovements(ctx, ram.ID)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, entities.MovementOut, all[0].Direction)
		assert.Equal(t, entities.MovementIn, all[1].Direction)

		none, err := uc.ListStockMovements(ctx, "other")
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestProductUseCase_UpdateAndDelete(t *testing.T) {
	store := newTestStore()
	uc := NewProductUseCase(store, nil, nil)
	ctx := context.Background()
	p := seedProduct(t, store, "HD 1TB", 15, 5, "250.00")

	negative := -3
	_, err := uc.Update(ctx, p.ID, ProductPatch{Quantity: &negative})
	require.ErrorIs(t, err, entities.ErrValidation)
	assert.Equal(t, 15, productQuantity(t, store, p.ID))

	category := "Armazenamento"
	updated, err := uc.Update(ctx, p.ID, ProductPatch{Category: &category})
	require.NoError(t, err)
	assert.Equal(t, category, updated.Category)
	assert.Equal(t, p.ID, updated.ID)

	require.NoError(t, uc.Delete(ctx, p.ID))
	_, err = uc.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, entities.ErrNotFound)
}
