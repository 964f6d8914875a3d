package reports

import (
	"context"
	"errors"
	"fmt"

	"storeAnalytics/domain"
	"storeAnalytics/pkg/logger"
	"storeAnalytics/pkg/metrics"
)

// Cache key names, shared with write paths that invalidate them.
const (
	ReportInventoryValue     = "inventory_value_by_category"
	ReportCustomerOrderStats = "customer_order_stats"
	ReportARPU               = "average_revenue_per_customer"
	ReportOrderSummaries     = "order_summaries"
)

// ReportRepository contract interface
type ReportRepository interface {
	InventoryValueByCategory(ctx context.Context) ([]domain.CategoryInventoryValue, error)
	CustomerOrderStats(ctx context.Context) ([]domain.CustomerOrderStats, error)
	ProductsInDeliveredOrders(ctx context.Context) ([]domain.Product, error)
	CustomersWithoutOrders(ctx context.Context) ([]domain.Customer, error)
	CategoriesAboveSales(ctx context.Context, threshold float64) ([]domain.CategorySales, error)
	AverageRevenuePerCustomer(ctx context.Context) (float64, error)
	OrderSummaries(ctx context.Context) ([]domain.OrderSummary, error)
}

// ProductLister is the slice of the product repository the reports need.
type ProductLister interface {
	FindAbovePrice(ctx context.Context, minPrice float64) ([]domain.Product, error)
}

// ReportCache is nil-safe at the service level: a nil cache disables
// caching without touching the read paths.
type ReportCache interface {
	Get(ctx context.Context, report string, dest interface{}) error
	Set(ctx context.Context, report string, value interface{}) error
}

type reportsService struct {
	reportRepo  ReportRepository
	productRepo ProductLister
	cache       ReportCache
}

func NewReportsService(reportRepo ReportRepository, productRepo ProductLister, cache ReportCache) *reportsService {
	return &reportsService{
		reportRepo:  reportRepo,
		productRepo: productRepo,
		cache:       cache,
	}
}

// ProductsAbovePrice is the price-filtered, price-descending product list.
func (s *reportsService) ProductsAbovePrice(ctx context.Context, minPrice float64) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when listing products above price")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if minPrice < 0 {
		logger.Error("Invalid report parameter: negative min price")
		return nil, errors.New("min price cannot be negative")
	}

	products, err := s.productRepo.FindAbovePrice(ctx, minPrice)
	if err != nil {
		logger.Error("Failed to list products above price", err)
		return nil, err
	}

	return products, nil
}

func (s *reportsService) InventoryValueByCategory(ctx context.Context) ([]domain.CategoryInventoryValue, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when computing inventory value")
		return nil, fmt.Errorf("context error: %w", err)
	}

	var cached []domain.CategoryInventoryValue
	if s.cacheGet(ctx, ReportInventoryValue, &cached) {
		return cached, nil
	}

	rows, err := s.reportRepo.InventoryValueByCategory(ctx)
	if err != nil {
		logger.Error("Failed to compute inventory value by category", err)
		return nil, err
	}

	s.cacheSet(ctx, ReportInventoryValue, rows)

	return rows, nil
}

func (s *reportsService) CustomerOrderStats(ctx context.Context) ([]domain.CustomerOrderStats, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when computing customer order stats")
		return nil, fmt.Errorf("context error: %w", err)
	}

	var cached []domain.CustomerOrderStats
	if s.cacheGet(ctx, ReportCustomerOrderStats, &cached) {
		return cached, nil
	}

	rows, err := s.reportRepo.CustomerOrderStats(ctx)
	if err != nil {
		logger.Error("Failed to compute customer order stats", err)
		return nil, err
	}

	s.cacheSet(ctx, ReportCustomerOrderStats, rows)

	return rows, nil
}

func (s *reportsService) ProductsInDeliveredOrders(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when listing delivered products")
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.reportRepo.ProductsInDeliveredOrders(ctx)
	if err != nil {
		logger.Error("Failed to list products in delivered orders", err)
		return nil, err
	}

	return products, nil
}

func (s *reportsService) CustomersWithoutOrders(ctx context.Context) ([]domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when listing customers without orders")
		return nil, fmt.Errorf("context error: %w", err)
	}

	customers, err := s.reportRepo.CustomersWithoutOrders(ctx)
	if err != nil {
		logger.Error("Failed to list customers without orders", err)
		return nil, err
	}

	return customers, nil
}

func (s *reportsService) CategoriesAboveSales(ctx context.Context, threshold float64) ([]domain.CategorySales, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when computing categories above sales")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if threshold < 0 {
		logger.Error("Invalid report parameter: negative sales threshold")
		return nil, errors.New("sales threshold cannot be negative")
	}

	rows, err := s.reportRepo.CategoriesAboveSales(ctx, threshold)
	if err != nil {
		logger.Error("Failed to compute categories above sales", err)
		return nil, err
	}

	return rows, nil
}

// AverageRevenuePerCustomer divides total order-item revenue across
// distinct purchasing customers; customers with no orders are excluded.
func (s *reportsService) AverageRevenuePerCustomer(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when computing ARPU")
		return 0, fmt.Errorf("context error: %w", err)
	}

	var cached float64
	if s.cacheGet(ctx, ReportARPU, &cached) {
		return cached, nil
	}

	arpu, err := s.reportRepo.AverageRevenuePerCustomer(ctx)
	if err != nil {
		logger.Error("Failed to compute average revenue per customer", err)
		return 0, err
	}

	s.cacheSet(ctx, ReportARPU, arpu)

	return arpu, nil
}

func (s *reportsService) OrderSummaries(ctx context.Context) ([]domain.OrderSummary, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when reading order summaries")
		return nil, fmt.Errorf("context error: %w", err)
	}

	var cached []domain.OrderSummary
	if s.cacheGet(ctx, ReportOrderSummaries, &cached) {
		return cached, nil
	}

	rows, err := s.reportRepo.OrderSummaries(ctx)
	if err != nil {
		logger.Error("Failed to read order summaries", err)
		return nil, err
	}

	s.cacheSet(ctx, ReportOrderSummaries, rows)

	return rows, nil
}

func (s *reportsService) cacheGet(ctx context.Context, report string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}

	if err := s.cache.Get(ctx, report, dest); err != nil {
		return false
	}

	metrics.ReportCacheHits.Inc()

	return true
}

func (s *reportsService) cacheSet(ctx context.Context, report string, value interface{}) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Set(ctx, report, value); err != nil {
		logger.Warn("Failed to cache report", "report", report, "error", err)
	}
}
