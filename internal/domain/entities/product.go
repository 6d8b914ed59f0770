package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ProductKind string

const (
	ProductKindPhysical ProductKind = "physical"
	ProductKindVirtual  ProductKind = "virtual"
)

func (k ProductKind) IsValid() bool {
	return k == ProductKindPhysical || k == ProductKindVirtual
}

func (k ProductKind) Label() string {
	switch k {
	case ProductKindPhysical:
		return "Físico"
	case ProductKindVirtual:
		return "Virtual"
	}
	return string(k)
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Kind        ProductKind     `json:"kind"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	MinQuantity int             `json:"min_quantity"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return Invalid("name", "is required")
	}
	if !p.Kind.IsValid() {
		return Invalid("kind", "must be physical or virtual")
	}
	if p.Quantity < 0 {
		return Invalid("quantity", "must not be negative")
	}
	if p.MinQuantity < 0 {
		return Invalid("min_quantity", "must not be negative")
	}
	if !p.Price.IsPositive() {
		return Invalid("price", "must be greater than zero")
	}
	return nil
}

// IsLowStock reports whether the product reached its replenishment threshold.
func (p Product) IsLowStock() bool {
	return p.Quantity <= p.MinQuantity
}

func (p Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// Withdraw takes qty units out of stock. Quantity never goes negative.
func (p *Product) Withdraw(qty int) error {
	if qty <= 0 {
		return Invalid("quantity", "must be greater than zero")
	}
	if qty > p.Quantity {
		return &StockError{ProductID: p.ID, Available: p.Quantity, Requested: qty}
	}
	p.Quantity -= qty
	return nil
}

func (p *Product) Restock(qty int) error {
	if qty <= 0 {
		return Invalid("quantity", "must be greater than zero")
	}
	p.Quantity += qty
	return nil
}
