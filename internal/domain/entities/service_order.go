package entities

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

type ServiceOrderStatus string

const (
	ServiceOrderStatusAnalyzing    ServiceOrderStatus = "analyzing"
	ServiceOrderStatusFixed        ServiceOrderStatus = "fixed"
	ServiceOrderStatusWaitingParts ServiceOrderStatus = "waiting_parts"
	ServiceOrderStatusCompleted    ServiceOrderStatus = "completed"
)

var allowedTransitions = map[ServiceOrderStatus]map[ServiceOrderStatus]bool{
	ServiceOrderStatusAnalyzing: {
		ServiceOrderStatusFixed:        true,
		ServiceOrderStatusWaitingParts: true,
		ServiceOrderStatusCompleted:    true,
	},
	ServiceOrderStatusWaitingParts: {
		ServiceOrderStatusFixed:     true,
		ServiceOrderStatusAnalyzing: true,
		ServiceOrderStatusCompleted: true,
	},
	ServiceOrderStatusFixed: {
		ServiceOrderStatusCompleted: true,
		ServiceOrderStatusAnalyzing: true,
	},
	ServiceOrderStatusCompleted: {},
}

// ServiceOrderStatuses lists every status in lifecycle order.
var ServiceOrderStatuses = []ServiceOrderStatus{
	ServiceOrderStatusAnalyzing,
	ServiceOrderStatusWaitingParts,
	ServiceOrderStatusFixed,
	ServiceOrderStatusCompleted,
}

func (s ServiceOrderStatus) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

func (s ServiceOrderStatus) IsTerminal() bool {
	return s.IsValid() && len(allowedTransitions[s]) == 0
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// Staying in the same status is always allowed.
func (s ServiceOrderStatus) CanTransitionTo(next ServiceOrderStatus) bool {
	if !next.IsValid() {
		return false
	}
	if s == next {
		return true
	}
	return allowedTransitions[s][next]
}

func (s ServiceOrderStatus) Label() string {
	switch s {
	case ServiceOrderStatusAnalyzing:
		return "Em Análise"
	case ServiceOrderStatusFixed:
		return "Consertado"
	case ServiceOrderStatusWaitingParts:
		return "Aguardando Peças"
	case ServiceOrderStatusCompleted:
		return "Finalizado"
	}
	return string(s)
}

type ServiceOrder struct {
	ID           string             `json:"id"`
	CustomerID   string             `json:"customer_id"`
	Description  string             `json:"description"`
	Equipment    string             `json:"equipment"`
	Status       ServiceOrderStatus `json:"status"`
	Technician   string             `json:"technician"`
	Observations string             `json:"observations"`
	UsedParts    []string           `json:"used_parts"`
	CreatedAt    time.Time          `json:"created_at"`
}

func (o ServiceOrder) Validate() error {
	if strings.TrimSpace(o.CustomerID) == "" {
		return Invalid("customer_id", "is required")
	}
	if strings.TrimSpace(o.Description) == "" {
		return Invalid("description", "is required")
	}
	if strings.TrimSpace(o.Equipment) == "" {
		return Invalid("equipment", "is required")
	}
	if !o.Status.IsValid() {
		return Invalid("status", fmt.Sprintf("%q is unknown", o.Status))
	}
	return nil
}

// TransitionTo moves the order to next, enforcing the lifecycle table.
func (o *ServiceOrder) TransitionTo(next ServiceOrderStatus) error {
	if !next.IsValid() {
		return Invalid("status", fmt.Sprintf("%q is unknown", next))
	}
	if !o.Status.CanTransitionTo(next) {
		return fmt.Errorf("%s -> %s: %w", o.Status, next, ErrInvalidStatusTransition)
	}
	o.Status = next
	return nil
}

// AddPart appends a product id to the used parts ledger. Stock is not touched.
func (o *ServiceOrder) AddPart(productID string) {
	o.UsedParts = append(o.UsedParts, productID)
}

func (o *ServiceOrder) RemovePartAt(index int) (string, error) {
	if index < 0 || index >= len(o.UsedParts) {
		return "", fmt.Errorf("used part %d of %d: %w", index, len(o.UsedParts), ErrIndexOutOfRange)
	}
	removed := o.UsedParts[index]
	o.UsedParts = slices.Delete(o.UsedParts, index, index+1)
	return removed, nil
}

func (o ServiceOrder) Clone() ServiceOrder {
	o.UsedParts = slices.Clone(o.UsedParts)
	return o
}
