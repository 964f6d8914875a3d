package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"storeAnalytics/domain"
	"storeAnalytics/pkg/logger"
	"storeAnalytics/pkg/metrics"

	"github.com/labstack/echo/v4"
)

type ReportsService interface {
	ProductsAbovePrice(ctx context.Context, minPrice float64) ([]domain.Product, error)
	InventoryValueByCategory(ctx context.Context) ([]domain.CategoryInventoryValue, error)
	CustomerOrderStats(ctx context.Context) ([]domain.CustomerOrderStats, error)
	ProductsInDeliveredOrders(ctx context.Context) ([]domain.Product, error)
	CustomersWithoutOrders(ctx context.Context) ([]domain.Customer, error)
	CategoriesAboveSales(ctx context.Context, threshold float64) ([]domain.CategorySales, error)
	AverageRevenuePerCustomer(ctx context.Context) (float64, error)
	OrderSummaries(ctx context.Context) ([]domain.OrderSummary, error)
}

type ReportsHandler struct {
	reportsService ReportsService
	timeout        time.Duration
}

func NewReportsHandler(reportsService ReportsService) *ReportsHandler {
	return &ReportsHandler{
		reportsService: reportsService,
		timeout:        10 * time.Second,
	}
}

// observe records request count and latency for one report.
func observe(report string, start time.Time) {
	metrics.ReportRequests.WithLabelValues(report).Inc()
	metrics.ReportDuration.WithLabelValues(report).Observe(time.Since(start).Seconds())
}

func (h *ReportsHandler) ProductsAbovePrice(c echo.Context) error {
	defer observe("products_above_price", time.Now())

	minPrice := 0.0
	if minPriceStr := c.QueryParam("min_price"); minPriceStr != "" {
		parsed, err := strconv.ParseFloat(minPriceStr, 64)
		if err != nil {
			logger.Error("Invalid min_price", err)
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid min_price"})
		}
		minPrice = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.reportsService.ProductsAbovePrice(ctx, minPrice)
	if err != nil {
		logger.Error("Failed to list products above price", err)
		if err.Error() == "min price cannot be negative" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "successfully get products above price",
		"min_price": minPrice,
		"products":  products,
	})
}

func (h *ReportsHandler) InventoryValueByCategory(c echo.Context) error {
	defer observe("inventory_value_by_category", time.Now())

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	rows, err := h.reportsService.InventoryValueByCategory(ctx)
	if err != nil {
		logger.Error("Failed to get inventory value by category", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "successfully get inventory value by category",
		"categories": rows,
	})
}

func (h *ReportsHandler) CustomerOrderStats(c echo.Context) error {
	defer observe("customer_order_stats", time.Now())

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	rows, err := h.reportsService.CustomerOrderStats(ctx)
	if err != nil {
		logger.Error("Failed to get customer order stats", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "successfully get customer order stats",
		"customers": rows,
	})
}

func (h *ReportsHandler) ProductsInDeliveredOrders(c echo.Context) error {
	defer observe("products_in_delivered_orders", time.Now())

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.reportsService.ProductsInDeliveredOrders(ctx)
	if err != nil {
		logger.Error("Failed to get products in delivered orders", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get products in delivered orders",
		"products": products,
	})
}

func (h *ReportsHandler) CustomersWithoutOrders(c echo.Context) error {
	defer observe("customers_without_orders", time.Now())

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	customers, err := h.reportsService.CustomersWithoutOrders(ctx)
	if err != nil {
		logger.Error("Failed to get customers without orders", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "successfully get customers without orders",
		"customers": customers,
	})
}

func (h *ReportsHandler) CategoriesAboveSales(c echo.Context) error {
	defer observe("categories_above_sales", time.Now())

	threshold := 0.0
	if thresholdStr := c.QueryParam("threshold"); thresholdStr != "" {
		parsed, err := strconv.ParseFloat(thresholdStr, 64)
		if err != nil {
			logger.Error("Invalid threshold", err)
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid threshold"})
		}
		threshold = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	rows, err := h.reportsService.CategoriesAboveSales(ctx, threshold)
	if err != nil {
		logger.Error("Failed to get categories above sales", err)
		if err.Error() == "sales threshold cannot be negative" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "successfully get categories above sales",
		"threshold":  threshold,
		"categories": rows,
	})
}

func (h *ReportsHandler) AverageRevenuePerCustomer(c echo.Context) error {
	defer observe("average_revenue_per_customer", time.Now())

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	arpu, err := h.reportsService.AverageRevenuePerCustomer(ctx)
	if err != nil {
		logger.Error("Failed to get average revenue per customer", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":                      "successfully get average revenue per customer",
		"average_revenue_per_customer": arpu,
	})
}

func (h *ReportsHandler) OrderSummaries(c echo.Context) error {
	defer observe("order_summaries", time.Now())

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	rows, err := h.reportsService.OrderSummaries(ctx)
	if err != nil {
		logger.Error("Failed to get order summaries", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get order summaries",
		"orders":  rows,
	})
}
