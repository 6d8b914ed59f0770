package request

import (
	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/usecase"
)

type ServiceOrderRequest struct {
	CustomerID   string   `json:"customer_id" binding:"required"`
	Description  string   `json:"description"`
	Equipment    string   `json:"equipment"`
	Technician   string   `json:"technician"`
	Observations string   `json:"observations"`
	Status       string   `json:"status"`
	UsedParts    []string `json:"used_parts"`
}

// ToInput defaults an empty status to analyzing.
func (r ServiceOrderRequest) ToInput() usecase.ServiceOrderInput {
	status := entities.ServiceOrderStatus(r.Status)
	if status == "" {
		status = entities.ServiceOrderStatusAnalyzing
	}
	return usecase.ServiceOrderInput{
		CustomerID:   r.CustomerID,
		Description:  r.Description,
		Equipment:    r.Equipment,
		Technician:   r.Technician,
		Observations: r.Observations,
		Status:       status,
		UsedParts:    r.UsedParts,
	}
}

type ServiceOrderPatchRequest struct {
	Description  *string `json:"description"`
	Equipment    *string `json:"equipment"`
	Technician   *string `json:"technician"`
	Observations *string `json:"observations"`
	Status       *string `json:"status"`
}

func (r ServiceOrderPatchRequest) ToPatch() usecase.ServiceOrderPatch {
	patch := usecase.ServiceOrderPatch{
		Description:  r.Description,
		Equipment:    r.Equipment,
		Technician:   r.Technician,
		Observations: r.Observations,
	}
	if r.Status != nil {
		s := entities.ServiceOrderStatus(*r.Status)
		patch.Status = &s
	}
	return patch
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UsedPartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}
