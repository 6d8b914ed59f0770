package response

import (
	"crm_assistencia/internal/domain/entities"
	"time"
)

type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Kind        string    `json:"kind"`
	Category    string    `json:"category"`
	Quantity    int       `json:"quantity"`
	MinQuantity int       `json:"min_quantity"`
	Price       string    `json:"price"`
	StockValue  string    `json:"stock_value"`
	LowStock    bool      `json:"low_stock"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Kind:        string(p.Kind),
		Category:    p.Category,
		Quantity:    p.Quantity,
		MinQuantity: p.MinQuantity,
		Price:       Money(p.Price),
		StockValue:  Money(p.StockValue()),
		LowStock:    p.IsLowStock(),
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

func FromProducts(ps []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProduct(p))
	}
	return out
}

type StockMovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Direction string    `json:"direction"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason"`
	SaleID    string    `json:"sale_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromStockMovement(m entities.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Direction: string(m.Direction),
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		SaleID:    m.SaleID,
		CreatedAt: m.CreatedAt,
	}
}

func FromStockMovements(ms []entities.StockMovement) []StockMovementResponse {
	out := make([]StockMovementResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromStockMovement(m))
	}
	return out
}

// StockMovementResult is returned after a manual movement: the ledger entry
// and the product as it stands afterwards.
type StockMovementResult struct {
	Movement StockMovementResponse `json:"movement"`
	Product  ProductResponse       `json:"product"`
}
