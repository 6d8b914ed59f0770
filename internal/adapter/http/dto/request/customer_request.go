package request

import (
	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/usecase"
)

type CustomerRequest struct {
	Name        string `json:"name" binding:"required"`
	TaxID       string `json:"tax_id"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	ServiceType string `json:"service_type" binding:"required"`
}

func (r CustomerRequest) ToInput() usecase.CustomerInput {
	return usecase.CustomerInput{
		Name:        r.Name,
		TaxID:       r.TaxID,
		Phone:       r.Phone,
		Email:       r.Email,
		Address:     r.Address,
		ServiceType: entities.ServiceType(r.ServiceType),
	}
}

// CustomerPatchRequest is a partial update; absent fields are kept.
type CustomerPatchRequest struct {
	Name        *string `json:"name"`
	TaxID       *string `json:"tax_id"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	ServiceType *string `json:"service_type"`
}

func (r CustomerPatchRequest) ToPatch() usecase.CustomerPatch {
	patch := usecase.CustomerPatch{
		Name:    r.Name,
		TaxID:   r.TaxID,
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
	}
	if r.ServiceType != nil {
		st := entities.ServiceType(*r.ServiceType)
		patch.ServiceType = &st
	}
	return patch
}
