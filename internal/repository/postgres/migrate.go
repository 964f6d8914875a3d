package postgres

import (
	"fmt"

	"storeAnalytics/domain"

	"gorm.io/gorm"
)

// orderSummariesView joins orders, customers and order items into a
// per-order rollup. LEFT JOIN on items keeps orders with no lines visible
// with a zero total.
const orderSummariesView = `
CREATE OR REPLACE VIEW order_summaries AS
SELECT o.id AS order_id,
       o.order_number,
       o.order_date,
       o.status,
       c.first_name || ' ' || c.last_name AS customer_name,
       c.email AS customer_email,
       COUNT(oi.id) AS item_count,
       COALESCE(SUM(oi.quantity * oi.unit_price), 0) AS order_total
FROM orders o
JOIN customers c ON c.id = o.customer_id
LEFT JOIN order_items oi ON oi.order_id = o.id
GROUP BY o.id, o.order_number, o.order_date, o.status, c.first_name, c.last_name, c.email
`

var secondaryIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_orders_customer_id ON orders (customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_products_name ON products (name)`,
}

// Migrate creates the schema, the order_summaries view and the secondary
// indexes. Safe to run on every startup.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&domain.Customer{},
		&domain.Product{},
		&domain.Order{},
		&domain.OrderItem{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	if err := db.Exec(orderSummariesView).Error; err != nil {
		return fmt.Errorf("failed to create order_summaries view: %w", err)
	}

	for _, stmt := range secondaryIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}
