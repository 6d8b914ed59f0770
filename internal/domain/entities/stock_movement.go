package entities

import (
	"fmt"
	"strings"
	"time"
)

type MovementDirection string

const (
	MovementIn  MovementDirection = "in"
	MovementOut MovementDirection = "out"
)

func (d MovementDirection) IsValid() bool {
	return d == MovementIn || d == MovementOut
}

func (d MovementDirection) Label() string {
	if d == MovementIn {
		return "Entrada"
	}
	return "Saída"
}

// StockMovement is an append-only ledger entry.
type StockMovement struct {
	ID        string            `json:"id"`
	ProductID string            `json:"product_id"`
	Direction MovementDirection `json:"direction"`
	Quantity  int               `json:"quantity"`
	Reason    string            `json:"reason"`
	SaleID    string            `json:"sale_id,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

func (m StockMovement) Validate() error {
	if strings.TrimSpace(m.ProductID) == "" {
		return Invalid("product_id", "is required")
	}
	if !m.Direction.IsValid() {
		return Invalid("direction", "must be in or out")
	}
	if m.Quantity <= 0 {
		return Invalid("quantity", "must be greater than zero")
	}
	return nil
}

func SaleMovementReason(saleID string) string {
	return fmt.Sprintf("Venda #%s", saleID)
}
