package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type SaleItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (i SaleItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale is immutable once created.
type Sale struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Technician string          `json:"technician"`
	Items      []SaleItem      `json:"items"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"created_at"`
}

// SumItems returns Σ quantity × unitPrice.
func SumItems(items []SaleItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}

func (s Sale) UnitsSold() int {
	n := 0
	for _, it := range s.Items {
		n += it.Quantity
	}
	return n
}

func (s Sale) Clone() Sale {
	s.Items = append([]SaleItem(nil), s.Items...)
	return s
}
