package request

import (
	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/usecase"

	"github.com/shopspring/decimal"
)

// ProductRequest accepts price as a JSON number or a decimal string.
type ProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Kind        string          `json:"kind" binding:"required"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	MinQuantity int             `json:"min_quantity"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

func (r ProductRequest) ToInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:        r.Name,
		Kind:        entities.ProductKind(r.Kind),
		Category:    r.Category,
		Quantity:    r.Quantity,
		MinQuantity: r.MinQuantity,
		Price:       r.Price,
		Description: r.Description,
	}
}

type ProductPatchRequest struct {
	Name        *string          `json:"name"`
	Kind        *string          `json:"kind"`
	Category    *string          `json:"category"`
	Quantity    *int             `json:"quantity"`
	MinQuantity *int             `json:"min_quantity"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
}

func (r ProductPatchRequest) ToPatch() usecase.ProductPatch {
	patch := usecase.ProductPatch{
		Name:        r.Name,
		Category:    r.Category,
		Quantity:    r.Quantity,
		MinQuantity: r.MinQuantity,
		Price:       r.Price,
		Description: r.Description,
	}
	if r.Kind != nil {
		k := entities.ProductKind(*r.Kind)
		patch.Kind = &k
	}
	return patch
}

type StockMovementRequest struct {
	Direction string `json:"direction" binding:"required"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
}

func (r StockMovementRequest) ToInput(productID string) usecase.StockMovementInput {
	return usecase.StockMovementInput{
		ProductID: productID,
		Direction: entities.MovementDirection(r.Direction),
		Quantity:  r.Quantity,
		Reason:    r.Reason,
	}
}
