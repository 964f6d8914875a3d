package router

import (
	"storeAnalytics/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupAuthRoutes(api *echo.Group, handler *rest.AuthHandler) {
	auth := api.Group("/auth")

	auth.POST("/login", handler.Login)
}

func SetupCustomerRoutes(api *echo.Group, handler *rest.CustomerHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	customers := api.Group("/customers")

	customers.GET("", handler.GetAllCustomers)
	customers.GET("/:id", handler.GetCustomerByID)
	customers.POST("", handler.CreateCustomer, authRequired, adminOnly)
	customers.PUT("/:id", handler.UpdateCustomer, authRequired, adminOnly)
	customers.DELETE("/:id", handler.DeleteCustomer, authRequired, adminOnly)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts)
	products.GET("/:id", handler.GetProductByID)
	products.POST("", handler.CreateProduct, authRequired, adminOnly)
	products.PUT("/:id", handler.UpdateProduct, authRequired, adminOnly)
	products.DELETE("/:id", handler.DeleteProduct, authRequired, adminOnly)
}

func SetOrdersRoutes(api *echo.Group, handler *rest.OrdersHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	orders := api.Group("/orders")

	orders.GET("", handler.GetAllOrders)
	orders.GET("/:id", handler.GetOrderByID)
	orders.POST("", handler.CreateOrder, authRequired, adminOnly)
	orders.PUT("/:id/status", handler.UpdateOrderStatus, authRequired, adminOnly)
	orders.DELETE("/:id", handler.DeleteOrder, authRequired, adminOnly)
}

func SetupReportRoutes(api *echo.Group, handler *rest.ReportsHandler) {
	reports := api.Group("/reports")

	reports.GET("/products-above-price", handler.ProductsAbovePrice)
	reports.GET("/inventory-value", handler.InventoryValueByCategory)
	reports.GET("/customer-order-stats", handler.CustomerOrderStats)
	reports.GET("/delivered-products", handler.ProductsInDeliveredOrders)
	reports.GET("/customers-without-orders", handler.CustomersWithoutOrders)
	reports.GET("/top-categories", handler.CategoriesAboveSales)
	reports.GET("/arpu", handler.AverageRevenuePerCustomer)
	reports.GET("/order-summaries", handler.OrderSummaries)
}
