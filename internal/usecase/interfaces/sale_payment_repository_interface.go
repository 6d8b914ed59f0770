package interfaces

import (
	"context"
	"crm_assistencia/internal/domain/entities"
)

// ISalePaymentRepository abstracts DynamoDB persistence for SalePayment.
type ISalePaymentRepository interface {
	Create(ctx context.Context, p entities.SalePayment) (entities.SalePayment, error)
	GetByID(ctx context.Context, id string) (entities.SalePayment, error)
	ListBySaleID(ctx context.Context, saleID string) ([]entities.SalePayment, error)
}
