package memory

import (
	"crm_assistencia/internal/domain/entities"
	"fmt"
	"slices"
)

// view reads through a state pointer and always hands out copies.
type view struct {
	state *state
}

func (v *view) GetCustomer(id string) (entities.Customer, error) {
	c, ok := v.state.customers.get(id)
	if !ok {
		return entities.Customer{}, fmt.Errorf("customer %q: %w", id, entities.ErrNotFound)
	}
	return c, nil
}

func (v *view) ListCustomers() []entities.Customer {
	return v.state.customers.list(same[entities.Customer])
}

func (v *view) GetProduct(id string) (entities.Product, error) {
	p, ok := v.state.products.get(id)
	if !ok {
		return entities.Product{}, fmt.Errorf("product %q: %w", id, entities.ErrNotFound)
	}
	return p, nil
}

func (v *view) ListProducts() []entities.Product {
	return v.state.products.list(same[entities.Product])
}

func (v *view) GetServiceOrder(id string) (entities.ServiceOrder, error) {
	o, ok := v.state.serviceOrders.get(id)
	if !ok {
		return entities.ServiceOrder{}, fmt.Errorf("service order %q: %w", id, entities.ErrNotFound)
	}
	return o.Clone(), nil
}

func (v *view) ListServiceOrders() []entities.ServiceOrder {
	return v.state.serviceOrders.list(entities.ServiceOrder.Clone)
}

func (v *view) GetSale(id string) (entities.Sale, error) {
	s, ok := v.state.sales.get(id)
	if !ok {
		return entities.Sale{}, fmt.Errorf("sale %q: %w", id, entities.ErrNotFound)
	}
	return s.Clone(), nil
}

func (v *view) ListSales() []entities.Sale {
	return v.state.sales.list(entities.Sale.Clone)
}

func (v *view) ListStockMovements() []entities.StockMovement {
	return slices.Clone(v.state.stockMovements)
}
