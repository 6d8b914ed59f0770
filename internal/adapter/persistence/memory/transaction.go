package memory

import (
	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/usecase/interfaces"
	"fmt"
	"time"
)

type transaction struct {
	view
	working state
	ids     interfaces.IIDGenerator
	now     time.Time
}

var _ interfaces.ITransaction = (*transaction)(nil)

func (tx *transaction) newID(id string) string {
	if id != "" {
		return id
	}
	return tx.ids.NewID()
}

func (tx *transaction) CreateCustomer(c entities.Customer) (entities.Customer, error) {
	c.ID = tx.newID(c.ID)
	if _, exists := tx.working.customers.get(c.ID); exists {
		return entities.Customer{}, fmt.Errorf("customer %q already exists: %w", c.ID, entities.ErrValidation)
	}
	if err := c.Validate(); err != nil {
		return entities.Customer{}, err
	}
	c.CreatedAt = tx.now
	tx.working.customers.put(c.ID, c)
	return c, nil
}

func (tx *transaction) UpdateCustomer(id string, mutator func(*entities.Customer) error) (entities.Customer, error) {
	current, ok := tx.working.customers.get(id)
	if !ok {
		return entities.Customer{}, fmt.Errorf("customer %q: %w", id, entities.ErrNotFound)
	}
	createdAt := current.CreatedAt
	if err := mutator(&current); err != nil {
		return entities.Customer{}, err
	}
	current.ID, current.CreatedAt = id, createdAt
	if err := current.Validate(); err != nil {
		return entities.Customer{}, err
	}
	tx.working.customers.put(id, current)
	return current, nil
}

// DeleteCustomer does not cascade: orders and sales keep the dangling id.
func (tx *transaction) DeleteCustomer(id string) error {
	if !tx.working.customers.remove(id) {
		return fmt.Errorf("customer %q: %w", id, entities.ErrNotFound)
	}
	return nil
}

func (tx *transaction) CreateProduct(p entities.Product) (entities.Product, error) {
	p.ID = tx.newID(p.ID)
	if _, exists := tx.working.products.get(p.ID); exists {
		return entities.Product{}, fmt.Errorf("product %q already exists: %w", p.ID, entities.ErrValidation)
	}
	if err := p.Validate(); err != nil {
		return entities.Product{}, err
	}
	p.CreatedAt = tx.now
	tx.working.products.put(p.ID, p)
	return p, nil
}

func (tx *transaction) UpdateProduct(id string, mutator func(*entities.Product) error) (entities.Product, error) {
	current, ok := tx.working.products.get(id)
	if !ok {
		return entities.Product{}, fmt.Errorf("product %q: %w", id, entities.ErrNotFound)
	}
	createdAt := current.CreatedAt
	if err := mutator(&current); err != nil {
		return entities.Product{}, err
	}
	current.ID, current.CreatedAt = id, createdAt
	if err := current.Validate(); err != nil {
		return entities.Product{}, err
	}
	tx.working.products.put(id, current)
	return current, nil
}

// DeleteProduct does not cascade: used parts and sale items keep the id.
func (tx *transaction) DeleteProduct(id string) error {
	if !tx.working.products.remove(id) {
		return fmt.Errorf("product %q: %w", id, entities.ErrNotFound)
	}
	return nil
}

func (tx *transaction) CreateServiceOrder(o entities.ServiceOrder) (entities.ServiceOrder, error) {
	o = o.Clone()
	o.ID = tx.newID(o.ID)
	if _, exists := tx.working.serviceOrders.get(o.ID); exists {
		return entities.ServiceOrder{}, fmt.Errorf("service order %q already exists: %w", o.ID, entities.ErrValidation)
	}
	if o.Status == "" {
		o.Status = entities.ServiceOrderStatusAnalyzing
	}
	if err := o.Validate(); err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := tx.requireCustomer(o.CustomerID); err != nil {
		return entities.ServiceOrder{}, err
	}
	for _, productID := range o.UsedParts {
		if err := tx.requireProduct(productID); err != nil {
			return entities.ServiceOrder{}, err
		}
	}
	if o.UsedParts == nil {
		o.UsedParts = []string{}
	}
	o.CreatedAt = tx.now
	tx.working.serviceOrders.put(o.ID, o)
	return o.Clone(), nil
}

func (tx *transaction) UpdateServiceOrder(id string, mutator func(*entities.ServiceOrder) error) (entities.ServiceOrder, error) {
	stored, ok := tx.working.serviceOrders.get(id)
	if !ok {
		return entities.ServiceOrder{}, fmt.Errorf("service order %q: %w", id, entities.ErrNotFound)
	}
	current := stored.Clone()
	if err := mutator(&current); err != nil {
		return entities.ServiceOrder{}, err
	}
	current.ID, current.CreatedAt = id, stored.CreatedAt
	if err := current.Validate(); err != nil {
		return entities.ServiceOrder{}, err
	}
	if current.CustomerID != stored.CustomerID {
		if err := tx.requireCustomer(current.CustomerID); err != nil {
			return entities.ServiceOrder{}, err
		}
	}
	tx.working.serviceOrders.put(id, current)
	return current.Clone(), nil
}

func (tx *transaction) DeleteServiceOrder(id string) error {
	if !tx.working.serviceOrders.remove(id) {
		return fmt.Errorf("service order %q: %w", id, entities.ErrNotFound)
	}
	return nil
}

// CreateSale records a sale. Stock is handled by the caller in the same transaction.
func (tx *transaction) CreateSale(s entities.Sale) (entities.Sale, error) {
	s = s.Clone()
	s.ID = tx.newID(s.ID)
	if _, exists := tx.working.sales.get(s.ID); exists {
		return entities.Sale{}, fmt.Errorf("sale %q already exists: %w", s.ID, entities.ErrValidation)
	}
	if len(s.Items) == 0 {
		return entities.Sale{}, entities.Invalid("items", "must not be empty")
	}
	if err := tx.requireCustomer(s.CustomerID); err != nil {
		return entities.Sale{}, err
	}
	for _, it := range s.Items {
		if it.Quantity <= 0 {
			return entities.Sale{}, entities.Invalid("quantity", "must be greater than zero")
		}
		if err := tx.requireProduct(it.ProductID); err != nil {
			return entities.Sale{}, err
		}
	}
	if want := entities.SumItems(s.Items); !s.Total.Equal(want) {
		return entities.Sale{}, entities.Invalid("total", fmt.Sprintf("must equal %s", want.StringFixed(2)))
	}
	s.CreatedAt = tx.now
	tx.working.sales.put(s.ID, s)
	return s.Clone(), nil
}

func (tx *transaction) AppendStockMovement(m entities.StockMovement) (entities.StockMovement, error) {
	if err := m.Validate(); err != nil {
		return entities.StockMovement{}, err
	}
	if err := tx.requireProduct(m.ProductID); err != nil {
		return entities.StockMovement{}, err
	}
	m.ID = tx.ids.NewID()
	m.CreatedAt = tx.now
	tx.working.stockMovements = append(tx.working.stockMovements, m)
	return m, nil
}

func (tx *transaction) requireCustomer(id string) error {
	if _, ok := tx.working.customers.get(id); !ok {
		return fmt.Errorf("customer %q: %w", id, entities.ErrInvalidReference)
	}
	return nil
}

func (tx *transaction) requireProduct(id string) error {
	if _, ok := tx.working.products.get(id); !ok {
		return fmt.Errorf("product %q: %w", id, entities.ErrInvalidReference)
	}
	return nil
}
