package routes

import (
	"crm_assistencia/internal/adapter/http/handlers"
	"crm_assistencia/internal/adapter/http/middleware"
	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth           = "/auth"
	PathCustomers      = "/customers"
	PathServiceOrders  = "/service-orders"
	PathSales          = "/sales"
	PathProducts       = "/products"
	PathStockMovements = "/stock-movements"
	PathReports        = "/reports"
	PathDashboard      = "/dashboard"
)

var (
	adminOnly = middleware.RequireRole(entities.RoleAdmin)
	staffOnly = middleware.RequireRole(entities.RoleAdmin, entities.RoleTechnician)
)

func addAuthRoutes(rg *gin.RouterGroup, uc usecase.IAuthUseCase) {
	rg.POST(PathAuth+"/login", handlers.NewAuthHandler(uc).Login)
}

// Customers, service orders and sales are open to every role; deletes are
// admin only.
func addCustomerRoutes(rg *gin.RouterGroup, h *handlers.CustomerHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.GET("", h.ListCustomers)
		customers.POST("", h.CreateCustomer)
		customers.GET("/:id", h.GetCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
		customers.PATCH("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", adminOnly, h.DeleteCustomer)
	}
}

func addServiceOrderRoutes(rg *gin.RouterGroup, h *handlers.ServiceOrderHandler) {
	orders := rg.Group(PathServiceOrders)
	{
		orders.GET("", h.ListServiceOrders)
		orders.POST("", h.CreateServiceOrder)
		orders.GET("/:id", h.GetServiceOrder)
		orders.PUT("/:id", h.UpdateServiceOrder)
		orders.PATCH("/:id", h.UpdateServiceOrder)
		orders.PATCH("/:id/status", h.ChangeStatus)
		orders.POST("/:id/parts", h.AddUsedPart)
		orders.DELETE("/:id/parts/:index", h.RemoveUsedPart)
		orders.DELETE("/:id", adminOnly, h.DeleteServiceOrder)
	}
}

func addSaleRoutes(rg *gin.RouterGroup, h *handlers.SaleHandler) {
	sales := rg.Group(PathSales)
	{
		sales.GET("", h.ListSales)
		sales.POST("", h.CreateSale)
		sales.GET("/:id", h.GetSale)
	}
}

func addSalePaymentRoutes(rg *gin.RouterGroup, h *handlers.SalePaymentHandler) {
	payments := rg.Group(PathSales + "/:id/payments")
	{
		payments.POST("", h.ChargeSale)
		payments.GET("", h.ListSalePayments)
		payments.GET("/:payment_id", h.GetSalePayment)
	}
}

// Inventory and reports are for admins and technicians.
func addProductRoutes(rg *gin.RouterGroup, h *handlers.ProductHandler) {
	products := rg.Group(PathProducts, staffOnly)
	{
		products.GET("", h.ListProducts)
		products.POST("", h.CreateProduct)
		products.GET("/low-stock", h.ListLowStock)
		products.GET("/:id", h.GetProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.PATCH("/:id", h.UpdateProduct)
		products.DELETE("/:id", adminOnly, h.DeleteProduct)
		products.POST("/:id/movements", h.RegisterStockMovement)
		products.GET("/:id/movements", h.ListStockMovements)
	}
	rg.GET(PathStockMovements, staffOnly, h.ListStockMovements)
}

func addReportRoutes(rg *gin.RouterGroup, h *handlers.ReportHandler) {
	rg.GET(PathDashboard, h.Dashboard)
	rg.GET(PathReports+"/:kind", staffOnly, h.GetReport)
}
