package response

import (
	"crm_assistencia/internal/domain/entities"
	"time"
)

type ServiceOrderResponse struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	Description  string    `json:"description"`
	Equipment    string    `json:"equipment"`
	Status       string    `json:"status"`
	StatusLabel  string    `json:"status_label"`
	Technician   string    `json:"technician"`
	Observations string    `json:"observations"`
	UsedParts    []string  `json:"used_parts"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	parts := o.UsedParts
	if parts == nil {
		parts = []string{}
	}
	return ServiceOrderResponse{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		Description:  o.Description,
		Equipment:    o.Equipment,
		Status:       string(o.Status),
		StatusLabel:  o.Status.Label(),
		Technician:   o.Technician,
		Observations: o.Observations,
		UsedParts:    parts,
		CreatedAt:    o.CreatedAt,
	}
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}
