package entities

import (
	"strings"
	"time"
)

type ServiceType string

const (
	ServiceTypeMaintenance ServiceType = "maintenance"
	ServiceTypeReplacement ServiceType = "replacement"
)

func (t ServiceType) IsValid() bool {
	switch t {
	case ServiceTypeMaintenance, ServiceTypeReplacement:
		return true
	}
	return false
}

// Label is the name shown in reports.
func (t ServiceType) Label() string {
	switch t {
	case ServiceTypeMaintenance:
		return "Manutenção"
	case ServiceTypeReplacement:
		return "Troca"
	}
	return string(t)
}

type Customer struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	TaxID       string      `json:"tax_id"`
	Phone       string      `json:"phone"`
	Email       string      `json:"email"`
	Address     string      `json:"address"`
	ServiceType ServiceType `json:"service_type"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (c Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return Invalid("name", "is required")
	}
	if !c.ServiceType.IsValid() {
		return Invalid("service_type", "must be maintenance or replacement")
	}
	return nil
}
