package response

import "crm_assistencia/internal/usecase"

type DashboardResponse struct {
	Customers       int                    `json:"customers"`
	Products        int                    `json:"products"`
	ServiceOrders   int                    `json:"service_orders"`
	PendingOrders   int                    `json:"pending_orders"`
	CompletedOrders int                    `json:"completed_orders"`
	CompletionRate  float64                `json:"completion_rate"`
	OrdersByStatus  map[string]int         `json:"orders_by_status"`
	Sales           int                    `json:"sales"`
	Revenue         string                 `json:"revenue"`
	AverageTicket   string                 `json:"average_ticket"`
	StockValue      string                 `json:"stock_value"`
	LowStock        []ProductResponse      `json:"low_stock"`
	RecentOrders    []ServiceOrderResponse `json:"recent_orders"`
}

func FromDashboard(d usecase.Dashboard) DashboardResponse {
	byStatus := make(map[string]int, len(d.OrdersByStatus))
	for s, n := range d.OrdersByStatus {
		byStatus[string(s)] = n
	}
	return DashboardResponse{
		Customers:       d.Customers,
		Products:        d.Products,
		ServiceOrders:   d.ServiceOrders,
		PendingOrders:   d.PendingOrders,
		CompletedOrders: d.CompletedOrders,
		CompletionRate:  d.CompletionRate,
		OrdersByStatus:  byStatus,
		Sales:           d.Sales,
		Revenue:         Money(d.Revenue),
		AverageTicket:   Money(d.AverageTicket),
		StockValue:      Money(d.StockValue),
		LowStock:        FromProducts(d.LowStock),
		RecentOrders:    FromServiceOrders(d.RecentOrders),
	}
}
