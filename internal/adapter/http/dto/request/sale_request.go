package request

import "crm_assistencia/internal/usecase"

type SaleItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type SaleRequest struct {
	CustomerID string            `json:"customer_id"`
	Technician string            `json:"technician"`
	Items      []SaleItemRequest `json:"items"`
}

func (r SaleRequest) ToInput() usecase.SaleInput {
	items := make([]usecase.SaleItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, usecase.SaleItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return usecase.SaleInput{CustomerID: r.CustomerID, Technician: r.Technician, Items: items}
}

// ChargeSaleRequest starts a PIX charge. PayerEmail may be empty when a
// sandbox payer is configured.
type ChargeSaleRequest struct {
	PayerEmail string `json:"payer_email"`
}
