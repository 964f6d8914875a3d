package postgres

import (
	"fmt"
	"time"

	"storeAnalytics/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Deterministic sample dataset. Emma has no orders on purpose so the
// anti-join report has something to find, and the first laptop line is
// priced below the catalog price to show the unit-price snapshot.

var seedCustomers = []domain.Customer{
	{FirstName: "Alice", LastName: "Johnson", Email: "alice.johnson@example.com"},
	{FirstName: "Bob", LastName: "Smith", Email: "bob.smith@example.com"},
	{FirstName: "Carol", LastName: "Diaz", Email: "carol.diaz@example.com"},
	{FirstName: "David", LastName: "Lee", Email: "david.lee@example.com"},
	{FirstName: "Emma", LastName: "Wright", Email: "emma.wright@example.com"},
}

var seedProducts = []domain.Product{
	{Name: "Laptop", Category: "Electronics", Price: 999.99, Stock: 10},
	{Name: "Wireless Mouse", Category: "Electronics", Price: 24.50, Stock: 120},
	{Name: "Mechanical Keyboard", Category: "Electronics", Price: 89.90, Stock: 45},
	{Name: "Noise-Cancelling Headphones", Category: "Electronics", Price: 199.00, Stock: 18},
	{Name: "Espresso Machine", Category: "Home", Price: 249.00, Stock: 15},
	{Name: "Desk Lamp", Category: "Home", Price: 39.95, Stock: 60},
	{Name: "Go Programming", Category: "Books", Price: 42.00, Stock: 30},
	{Name: "Database Design", Category: "Books", Price: 55.00, Stock: 25},
}

type seedItem struct {
	productName string
	quantity    int
	unitPrice   float64
}

type seedOrder struct {
	customerEmail string
	status        string
	daysAgo       int
	items         []seedItem
}

var seedOrders = []seedOrder{
	{
		customerEmail: "alice.johnson@example.com",
		status:        domain.OrderStatusDelivered,
		daysAgo:       21,
		items: []seedItem{
			{productName: "Laptop", quantity: 1, unitPrice: 949.99},
			{productName: "Wireless Mouse", quantity: 2, unitPrice: 24.50},
		},
	},
	{
		customerEmail: "bob.smith@example.com",
		status:        domain.OrderStatusDelivered,
		daysAgo:       14,
		items: []seedItem{
			{productName: "Mechanical Keyboard", quantity: 1, unitPrice: 89.90},
			{productName: "Go Programming", quantity: 1, unitPrice: 42.00},
		},
	},
	{
		customerEmail: "carol.diaz@example.com",
		status:        domain.OrderStatusShipped,
		daysAgo:       7,
		items: []seedItem{
			{productName: "Espresso Machine", quantity: 1, unitPrice: 249.00},
		},
	},
	{
		customerEmail: "david.lee@example.com",
		status:        domain.OrderStatusPending,
		daysAgo:       3,
		items: []seedItem{
			{productName: "Desk Lamp", quantity: 2, unitPrice: 39.95},
			{productName: "Database Design", quantity: 1, unitPrice: 55.00},
		},
	},
	{
		customerEmail: "alice.johnson@example.com",
		status:        domain.OrderStatusPending,
		daysAgo:       1,
		items: []seedItem{
			{productName: "Noise-Cancelling Headphones", quantity: 1, unitPrice: 199.00},
		},
	},
}

// Seed inserts the sample dataset once. A database that already has
// customers is left untouched.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Customer{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count customers: %w", err)
	}

	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		customersByEmail := make(map[string]uint, len(seedCustomers))
		for _, c := range seedCustomers {
			customer := c
			if err := tx.Create(&customer).Error; err != nil {
				return fmt.Errorf("failed to seed customer %s: %w", c.Email, err)
			}
			customersByEmail[customer.Email] = customer.ID
		}

		productsByName := make(map[string]uint64, len(seedProducts))
		for _, p := range seedProducts {
			product := p
			if err := tx.Create(&product).Error; err != nil {
				return fmt.Errorf("failed to seed product %s: %w", p.Name, err)
			}
			productsByName[product.Name] = product.ID
		}

		for _, o := range seedOrders {
			order := domain.Order{
				OrderNumber: uuid.NewString(),
				CustomerID:  customersByEmail[o.customerEmail],
				OrderDate:   time.Now().AddDate(0, 0, -o.daysAgo),
				Status:      o.status,
			}
			for _, item := range o.items {
				order.Items = append(order.Items, domain.OrderItem{
					ProductID: productsByName[item.productName],
					Quantity:  item.quantity,
					UnitPrice: item.unitPrice,
				})
			}

			if err := tx.Create(&order).Error; err != nil {
				return fmt.Errorf("failed to seed order for %s: %w", o.customerEmail, err)
			}
		}

		return nil
	})
}
