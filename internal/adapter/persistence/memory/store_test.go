package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/infrastructure/idgen"
	"crm_assistencia/internal/usecase/interfaces"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 1, 25, 10, 0, 0, 0, time.UTC)

func newTestStore() *Store {
	return NewStore(WithIDGenerator(idgen.NewSequence("")), WithClock(func() time.Time { return fixedNow }))
}

type snapshot struct {
	Customers      []entities.Customer
	Products       []entities.Product
	ServiceOrders  []entities.ServiceOrder
	Sales          []entities.Sale
	StockMovements []entities.StockMovement
}

func takeSnapshot(t *testing.T, s *Store) snapshot {
	t.Helper()
	var snap snapshot
	require.NoError(t, s.View(context.Background(), func(v interfaces.IStoreView) error {
		snap = snapshot{
			Customers:      v.ListCustomers(),
			Products:       v.ListProducts(),
			ServiceOrders:  v.ListServiceOrders(),
			Sales:          v.ListSales(),
			StockMovements: v.ListStockMovements(),
		}
		return nil
	}))
	return snap
}

func assertUnchanged(t *testing.T, before, after snapshot) {
	t.Helper()
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("store changed (-before +after):\n%s\nafter=%s", diff, spew.Sdump(after))
	}
}

func mustCreateCustomer(t *testing.T, s *Store, name string) entities.Customer {
	t.Helper()
	var out entities.Customer
	require.NoError(t, s.RunInTransaction(context.Background(), func(tx interfaces.ITransaction) error {
		var err error
		out, err = tx.CreateCustomer(entities.Customer{Name: name, ServiceType: entities.ServiceTypeMaintenance})
		return err
	}))
	return out
}

func mustCreateProduct(t *testing.T, s *Store, name string, qty int, price string) entities.Product {
	t.Helper()
	var out entities.Product
	require.NoError(t, s.RunInTransaction(context.Background(), func(tx interfaces.ITransaction) error {
		var err error
		out, err = tx.CreateProduct(entities.Product{Name: name, Kind: entities.ProductKindPhysical, Quantity: qty, MinQuantity: 1, Price: decimal.RequireFromString(price)})
		return err
	}))
	return out
}

func TestStore_CreateAndGetRoundTrip(t *testing.T) {
	s := newTestStore()
	input := entities.Customer{
		Name:        "João Silva",
		TaxID:       "123.456.789-10",
		Phone:       "(11) 99999-9999",
		Email:       "joao@email.com",
		Address:     "Rua A, 123",
		ServiceType: entities.ServiceTypeMaintenance,
	}

	var created entities.Customer
	require.NoError(t, s.RunInTransaction(context.Background(), func(tx interfaces.ITransaction) error {
		var err error
		created, err = tx.CreateCustomer(input)
		return err
	}))

	var got entities.Customer
	require.NoError(t, s.View(context.Background(), func(v interfaces.IStoreView) error {
		var err error
		got, err = v.GetCustomer(created.ID)
		return err
	}))

	want := input
	want.ID = "1"
	want.CreatedAt = fixedNow
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_UpdateMissingIDReportsNotFound(t *testing.T) {
	s := newTestStore()
	mustCreateCustomer(t, s, "Maria Santos")
	mustCreateProduct(t, s, "HD 1TB", 15, "250.00")
	before := takeSnapshot(t, s)

	called := false
	err := s.RunInTransaction(context.Background(), func(tx interfaces.ITransaction) error {
		_, err := tx.UpdateCustomer("missing", func(c *entities.Customer) error {
			called = true
			c.Name = "changed"
			return nil
		})
		return err
	})

	assert.ErrorIs(t, err, entities.ErrNotFound)
	assert.False(t, called)
	assertUnchanged(t, before, takeSnapshot(t, s))

	for name, op := range map[string]func(tx interfaces.ITransaction) error{
		"update product":       func(tx interfaces.ITransaction) error { _, err := tx.UpdateProduct("missing", func(*entities.Product) error { return nil }); return err },
		"update service order": func(tx interfaces.ITransaction) error { _, err := tx.UpdateServiceOrder("missing", func(*entities.ServiceOrder) error { return nil }); return err },
		"delete customer":      func(tx interfaces.ITransaction) error { return tx.DeleteCustomer("missing") },
		"delete product":       func(tx interfaces.ITransaction) error { return tx.DeleteProduct("missing") },
		"delete service order": func(tx interfaces.ITransaction) error { return tx.DeleteServiceOrder("missing") },
	} {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, s.RunInTransaction(context.Background(), op), entities.ErrNotFound)
			assertUnchanged(t, before, takeSnapshot(t, s))
		})
	}
}

func TestStore_UpdateKeepsIdentity(t *testing.T) {
	s := newTestStore()
	c := mustCreateCustomer(t, s, "Carlos Oliveira")

	var updated entities.Customer
	require.NoError(t, s.RunInTransaction(context.Background(), func(tx interfaces.ITransaction) error {
		var err error
		updated, err = tx.UpdateCustomer(c.ID, func(cu *entities.Customer) error {
			cu.ID = "hijack"
			cu.CreatedAt = time.Time{}
			cu.Phone = "(11) 77777-7777"
			return nil
		})
		return err
	}))

	assert.Equal(t, c.ID, updated.ID)
	assert.Equal(t, fixedNow, updated.CreatedAt)
	assert.Equal(t, "(11) 77777-7777", updated.Phone)
}

func TestStore_FailedTransactionRollsBack(t *testing.T) {
	s := newTestStore()
	p := mustCreateProduct(t, s, "SSD 500GB", 8, "320.00")
	before := takeSnapshot(t, s)

	boom := errors.New("boom")
	err := s.RunInTransaction(context.Background(), func(tx interfaces.ITransaction) error {
		if _, err := tx.UpdateProduct(p.ID, func(pr *entities.Product) error { return pr.Withdraw(3) }); err != nil {
			return err
		}
		if _, err := tx.AppendStockMovement(entities.StockMovement{ProductID: p.ID, Direction: entities.MovementOut, Quantity: 3, Reason: "test"}); err != nil {
			return err
		}
		if _, err := tx.CreateCustomer(entities.Customer{Name: "x", ServiceType: entities.ServiceTypeMaintenance}); err != nil {
			return err
		}
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assertUnchanged(t, before, takeSnapshot(t, s))
}

func TestStore_TransactionSeesOwnWrites(t *testing.T) {
	s := newTestStore()
	require.NoError(t, s.RunInTransaction(context.Background(), func(tx interfaces.ITransaction) error {
		c, err := tx.CreateCustomer(entities.Customer{Name: "Ana", ServiceType: entities.ServiceTypeReplacement})
		if err != nil {
			return err
		}
		_, err = tx.GetCustomer(c.ID)
		return err
	}))
}

func TestStore_NegativeQuantityRejected(t *testing.T) {
	s := newTestStore()
	p := mustCreateProduct(t, s, "GTX 1660", 2, "1200.00")
	before := takeSnapshot(t, s)

	err := s.RunInTransaction(context.Background(), func(tx interfaces.ITransaction) error {
		_, err := tx.UpdateProduct(p.ID, func(pr *entities.Product) error {
			pr.Quantity = -1
			return nil
		})
		return err
	})

	assert.ErrorIs(t, err, entities.ErrValidation)
	assertUnchanged(t, before, takeSnapshot(t, s))
}

func TestStore_References(t *testing.T) {
	s := newTestStore()
	c := mustCreateCustomer(t, s, "João Silva")
	p := mustCreateProduct(t, s, "HD 1TB", 15, "250.00")

	t.Run("service order with unknown customer", func(t *testing.T) {
		err := s.RunInTransaction(context.Background(), func(tx interfaces.ITransaction) error {
			_, err := tx.CreateServiceOrder(entities.ServiceOrder{CustomerID: "nope", Description: "não liga", Equipment: "Desktop"})
			return err
		})
		assert.ErrorIs(t, err, entities.ErrInvalidReference)
	})

	t.Run("service order defaults to analyzing", func(t *testing.T) {
		var o entities.ServiceOrder
		require.NoError(t, s.RunInTransaction(context.Background(), func(tx interfaces.ITransaction) error {
			var err error
			o, err = tx.CreateServiceOrder(entities.ServiceOrder{CustomerID: c.ID, Description: "não liga", Equipment: "Desktop"})
			return err
		}))
		assert.Equal(t, entities.ServiceOrderStatusAnalyzing, o.Status)
		assert.NotNil(t, o.UsedParts)
	})

	t.Run("sale with unknown product", func(t *testing.T) {
		err := s.RunInTransaction(context.Background(), func(tx interfaces.ITransaction) error {
			items := []entities.SaleItem{{ProductID: "nope", Quantity: 1, UnitPrice: decimal.NewFromInt(1)}}
			_, err := tx.CreateSale(entities.Sale{CustomerID: c.ID, Items: items, Total: entities.SumItems(items)})
			return err
		})
		assert.ErrorIs(t, err, entities.ErrInvalidReference)
	})

	t.Run("sale total must match items", func(t *testing.T) {
		err := s.RunInTransaction(context.Background(), func(tx interfaces.ITransaction) error {
			items := []entities.SaleItem{{ProductID: p.ID, Quantity: 2, UnitPrice: p.Price}}
			_, err := tx.CreateSale(entities.Sale{CustomerID: c.ID, Items: items, Total: p.Price})
			return err
		})
		assert.ErrorIs(t, err, entities.ErrValidation)
	})

	t.Run("movement with unknown product", func(t *testing.T) {
		err := s.RunInTransaction(context.Background(), func(tx interfaces.ITransaction) error {
			_, err := tx.AppendStockMovement(entities.StockMovement{ProductID: "nope", Direction: entities.MovementIn, Quantity: 1})
			return err
		})
		assert.ErrorIs(t, err, entities.ErrInvalidReference)
	})
}

func TestStore_DeleteDoesNotCascade(t *testing.T) {
	s := newTestStore()
	c := mustCreateCustomer(t, s, "Maria Santos")
	p := mustCreateProduct(t, s, "Memória RAM 8GB", 3, "180.00")

	var order entities.ServiceOrder
	require.NoError(t, s.RunInTransaction(context.Background(), func(tx interfaces.ITransaction) error {
		var err error
		order, err = tx.CreateServiceOrder(entities.ServiceOrder{CustomerID: c.ID, Description: "tela azul", Equipment: "Notebook", UsedParts: []string{p.ID}})
		return err
	}))

	require.NoError(t, s.RunInTransaction(context.Background(), func(tx interfaces.ITransaction) error {
		if err := tx.DeleteCustomer(c.ID); err != nil {
			return err
		}
		return tx.DeleteProduct(p.ID)
	}))

	require.NoError(t, s.View(context.Background(), func(v interfaces.IStoreView) error {
		got, err := v.GetServiceOrder(order.ID)
		require.NoError(t, err)
		assert.Equal(t, c.ID, got.CustomerID)
		assert.Equal(t, []string{p.ID}, got.UsedParts)
		_, err = v.GetCustomer(c.ID)
		assert.ErrorIs(t, err, entities.ErrNotFound)
		return nil
	}))
}

func TestStore_ListKeepsInsertionOrderAndCopies(t *testing.T) {
	s := newTestStore()
	c := mustCreateCustomer(t, s, "A")
	mustCreateCustomer(t, s, "B")
	mustCreateCustomer(t, s, "C")

	require.NoError(t, s.RunInTransaction(context.Background(), func(tx interfaces.ITransaction) error {
		return tx.DeleteCustomer(c.ID)
	}))
	mustCreateCustomer(t, s, "D")

	var names []string
	require.NoError(t, s.View(context.Background(), func(v interfaces.IStoreView) error {
		for _, cu := range v.ListCustomers() {
			names = append(names, cu.Name)
		}
		return nil
	}))
	assert.Equal(t, []string{"B", "C", "D"}, names)

	p := mustCreateProduct(t, s, "HD", 1, "1")
	var order entities.ServiceOrder
	require.NoError(t, s.RunInTransaction(context.Background(), func(tx interfaces.ITransaction) error {
		var err error
		order, err = tx.CreateServiceOrder(entities.ServiceOrder{CustomerID: "2", Description: "d", Equipment: "e", UsedParts: []string{p.ID}})
		return err
	}))
	order.UsedParts[0] = "mutated outside"
	require.NoError(t, s.View(context.Background(), func(v interfaces.IStoreView) error {
		got, err := v.GetServiceOrder(order.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{p.ID}, got.UsedParts)
		return nil
	}))
}

func TestStore_CanceledContext(t *testing.T) {
	s := newTestStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.RunInTransaction(ctx, func(tx interfaces.ITransaction) error {
		t.Fatal("transaction must not run")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.View(ctx, func(interfaces.IStoreView) error { return nil }), context.Canceled)
}

func TestSeedDemoData(t *testing.T) {
	s := newTestStore()
	require.NoError(t, SeedDemoData(context.Background(), s))

	snap := takeSnapshot(t, s)
	assert.Len(t, snap.Customers, 3)
	assert.Len(t, snap.Products, 5)
	assert.Len(t, snap.ServiceOrders, 3)
	assert.Empty(t, snap.Sales)
	assert.Empty(t, snap.StockMovements)

	lowStock := 0
	for _, p := range snap.Products {
		if p.IsLowStock() {
			lowStock++
		}
	}
	assert.Equal(t, 2, lowStock)
	assert.Equal(t, entities.ServiceOrderStatusCompleted, snap.ServiceOrders[2].Status)
}
