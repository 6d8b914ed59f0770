package response

import (
	"crm_assistencia/internal/domain/entities"
	"time"
)

type SaleItemResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

type SaleResponse struct {
	ID         string             `json:"id"`
	CustomerID string             `json:"customer_id"`
	Technician string             `json:"technician"`
	Items      []SaleItemResponse `json:"items"`
	Total      string             `json:"total"`
	CreatedAt  time.Time          `json:"created_at"`
}

func FromSale(s entities.Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, SaleItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: Money(it.UnitPrice),
			Subtotal:  Money(it.Subtotal()),
		})
	}
	return SaleResponse{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		Technician: s.Technician,
		Items:      items,
		Total:      Money(s.Total),
		CreatedAt:  s.CreatedAt,
	}
}

func FromSales(ss []entities.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromSale(s))
	}
	return out
}
