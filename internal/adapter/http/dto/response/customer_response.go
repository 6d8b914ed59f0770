package response

import (
	"crm_assistencia/internal/domain/entities"
	"time"
)

type CustomerResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	TaxID            string    `json:"tax_id"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	Address          string    `json:"address"`
	ServiceType      string    `json:"service_type"`
	ServiceTypeLabel string    `json:"service_type_label"`
	CreatedAt        time.Time `json:"created_at"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:               c.ID,
		Name:             c.Name,
		TaxID:            c.TaxID,
		Phone:            c.Phone,
		Email:            c.Email,
		Address:          c.Address,
		ServiceType:      string(c.ServiceType),
		ServiceTypeLabel: c.ServiceType.Label(),
		CreatedAt:        c.CreatedAt,
	}
}

func FromCustomers(cs []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCustomer(c))
	}
	return out
}
