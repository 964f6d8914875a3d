package postgres

import (
	"context"
	"fmt"

	"storeAnalytics/domain"

	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{
		DB: db,
	}
}

// InventoryValueByCategory sums price * stock per product category.
func (r *ReportRepository) InventoryValueByCategory(ctx context.Context) ([]domain.CategoryInventoryValue, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []domain.CategoryInventoryValue
	err := r.DB.WithContext(ctx).Raw(`
		SELECT category, SUM(price * stock) AS inventory_value
		FROM products
		GROUP BY category
		ORDER BY inventory_value DESC
	`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory value by category: %w", err)
	}

	return rows, nil
}

// CustomerOrderStats returns per-customer order count, total revenue and
// average item value across customers that have at least one order item.
func (r *ReportRepository) CustomerOrderStats(ctx context.Context) ([]domain.CustomerOrderStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []domain.CustomerOrderStats
	err := r.DB.WithContext(ctx).Raw(`
		SELECT c.id AS customer_id,
		       c.first_name,
		       c.last_name,
		       c.email,
		       COUNT(DISTINCT o.id) AS order_count,
		       SUM(oi.quantity * oi.unit_price) AS total_revenue,
		       AVG(oi.unit_price) AS avg_item_value
		FROM customers c
		JOIN orders o ON o.customer_id = c.id
		JOIN order_items oi ON oi.order_id = o.id
		GROUP BY c.id, c.first_name, c.last_name, c.email
		ORDER BY total_revenue DESC
	`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query customer order stats: %w", err)
	}

	return rows, nil
}

// ProductsInDeliveredOrders lists products that appear on at least one
// delivered order, via nested membership subqueries.
func (r *ReportRepository) ProductsInDeliveredOrders(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var products []domain.Product
	err := r.DB.WithContext(ctx).Raw(`
		SELECT *
		FROM products
		WHERE id IN (
			SELECT product_id
			FROM order_items
			WHERE order_id IN (
				SELECT id FROM orders WHERE status = ?
			)
		)
		ORDER BY name
	`, domain.OrderStatusDelivered).Scan(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query products in delivered orders: %w", err)
	}

	return products, nil
}

// CustomersWithoutOrders uses the left-join anti-join pattern.
func (r *ReportRepository) CustomersWithoutOrders(ctx context.Context) ([]domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var customers []domain.Customer
	err := r.DB.WithContext(ctx).Raw(`
		SELECT c.*
		FROM customers c
		LEFT JOIN orders o ON o.customer_id = c.id
		WHERE o.id IS NULL
		ORDER BY c.id
	`).Scan(&customers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query customers without orders: %w", err)
	}

	return customers, nil
}

// CategoriesAboveSales returns categories whose total sales exceed the
// threshold, using a post-aggregation HAVING filter.
func (r *ReportRepository) CategoriesAboveSales(ctx context.Context, threshold float64) ([]domain.CategorySales, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []domain.CategorySales
	err := r.DB.WithContext(ctx).Raw(`
		SELECT p.category, SUM(oi.quantity * oi.unit_price) AS total_sales
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		GROUP BY p.category
		HAVING SUM(oi.quantity * oi.unit_price) > ?
		ORDER BY total_sales DESC
	`, threshold).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query categories above sales: %w", err)
	}

	return rows, nil
}

// AverageRevenuePerCustomer wraps a derived per-customer revenue aggregate
// in an outer AVG. Customers with no orders do not enter the denominator.
func (r *ReportRepository) AverageRevenuePerCustomer(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var arpu *float64
	err := r.DB.WithContext(ctx).Raw(`
		SELECT AVG(t.revenue)
		FROM (
			SELECT o.customer_id, SUM(oi.quantity * oi.unit_price) AS revenue
			FROM orders o
			JOIN order_items oi ON oi.order_id = o.id
			GROUP BY o.customer_id
		) t
	`).Scan(&arpu).Error
	if err != nil {
		return 0, fmt.Errorf("failed to query average revenue per customer: %w", err)
	}

	// no purchasing customers yet
	if arpu == nil {
		return 0, nil
	}

	return *arpu, nil
}

// OrderSummaries reads the persisted order_summaries view.
func (r *ReportRepository) OrderSummaries(ctx context.Context) ([]domain.OrderSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []domain.OrderSummary
	err := r.DB.WithContext(ctx).Raw(`
		SELECT * FROM order_summaries ORDER BY order_id
	`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query order summaries: %w", err)
	}

	return rows, nil
}
