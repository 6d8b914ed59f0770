package usecase

import (
	"context"
	"testing"
	"time"

	"crm_assistencia/internal/adapter/persistence/memory"
	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/infrastructure/idgen"
	"crm_assistencia/internal/usecase/interfaces"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

var testNow = time.Date(2024, 1, 25, 14, 30, 0, 0, time.UTC)

func newTestStore() *memory.Store {
	return memory.NewStore(
		memory.WithIDGenerator(idgen.NewSequence("")),
		memory.WithClock(func() time.Time { return testNow }),
	)
}

type storeSnapshot struct {
	Customers      []entities.Customer
	Products       []entities.Product
	ServiceOrders  []entities.ServiceOrder
	Sales          []entities.Sale
	StockMovements []entities.StockMovement
}

func snapshotOf(t *testing.T, s interfaces.IStore) storeSnapshot {
	t.Helper()
	var snap storeSnapshot
	err := s.View(context.Background(), func(v interfaces.IStoreView) error {
		snap = storeSnapshot{
			Customers:      v.ListCustomers(),
			Products:       v.ListProducts(),
			ServiceOrders:  v.ListServiceOrders(),
			Sales:          v.ListSales(),
			StockMovements: v.ListStockMovements(),
		}
		return nil
	})
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	return snap
}

func requireUnchanged(t *testing.T, before, after storeSnapshot) {
	t.Helper()
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("store changed (-before +after):\n%s", diff)
	}
}

func seedCustomer(t *testing.T, s interfaces.IStore, name string) entities.Customer {
	t.Helper()
	c, err := NewCustomerUseCase(s).Create(context.Background(), CustomerInput{Name: name, ServiceType: entities.ServiceTypeMaintenance})
	if err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return c
}

func seedProduct(t *testing.T, s interfaces.IStore, name string, qty, minQty int, price string) entities.Product {
	t.Helper()
	p, err := NewProductUseCase(s, nil, nil).Create(context.Background(), ProductInput{
		Name:        name,
		Kind:        entities.ProductKindPhysical,
		Quantity:    qty,
		MinQuantity: minQty,
		Price:       decimal.RequireFromString(price),
	})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func productQuantity(t *testing.T, s interfaces.IStore, id string) int {
	t.Helper()
	var qty int
	err := s.View(context.Background(), func(v interfaces.IStoreView) error {
		p, err := v.GetProduct(id)
		qty = p.Quantity
		return err
	})
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	return qty
}
