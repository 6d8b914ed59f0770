package interfaces

import (
	"context"
	"crm_assistencia/internal/domain/entities"
)

// IStoreView is a read-only, consistent view over the entity collections.
// Getters fail with entities.ErrNotFound; lists keep insertion order.
type IStoreView interface {
	GetCustomer(id string) (entities.Customer, error)
	ListCustomers() []entities.Customer
	GetProduct(id string) (entities.Product, error)
	ListProducts() []entities.Product
	GetServiceOrder(id string) (entities.ServiceOrder, error)
	ListServiceOrders() []entities.ServiceOrder
	GetSale(id string) (entities.Sale, error)
	ListSales() []entities.Sale
	ListStockMovements() []entities.StockMovement
}

// ITransaction mutates a private copy of the state. The copy replaces the
// store state only when the transaction function returns nil.
type ITransaction interface {
	IStoreView

	CreateCustomer(c entities.Customer) (entities.Customer, error)
	UpdateCustomer(id string, mutator func(*entities.Customer) error) (entities.Customer, error)
	DeleteCustomer(id string) error

	CreateProduct(p entities.Product) (entities.Product, error)
	UpdateProduct(id string, mutator func(*entities.Product) error) (entities.Product, error)
	DeleteProduct(id string) error

	CreateServiceOrder(o entities.ServiceOrder) (entities.ServiceOrder, error)
	UpdateServiceOrder(id string, mutator func(*entities.ServiceOrder) error) (entities.ServiceOrder, error)
	DeleteServiceOrder(id string) error

	CreateSale(s entities.Sale) (entities.Sale, error)
	AppendStockMovement(m entities.StockMovement) (entities.StockMovement, error)
}

// IStore is the Entity Store.
type IStore interface {
	RunInTransaction(ctx context.Context, fn func(tx ITransaction) error) error
	View(ctx context.Context, fn func(v IStoreView) error) error
}

// IIDGenerator hands out ids that are unique for the process lifetime.
type IIDGenerator interface {
	NewID() string
}
