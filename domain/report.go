package domain

import "time"

// Result rows for the analytical reports. These are scan targets for
// aggregate queries, not tables.

type CategoryInventoryValue struct {
	Category       string  `json:"category"`
	InventoryValue float64 `json:"inventory_value"`
}

type CustomerOrderStats struct {
	CustomerID   uint    `json:"customer_id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	OrderCount   int64   `json:"order_count"`
	TotalRevenue float64 `json:"total_revenue"`
	AvgItemValue float64 `json:"avg_item_value"`
}

type CategorySales struct {
	Category   string  `json:"category"`
	TotalSales float64 `json:"total_sales"`
}

// OrderSummary mirrors the order_summaries view.
type OrderSummary struct {
	OrderID       uint      `json:"order_id"`
	OrderNumber   string    `json:"order_number"`
	OrderDate     time.Time `json:"order_date"`
	Status        string    `json:"status"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	ItemCount     int64     `json:"item_count"`
	OrderTotal    float64   `json:"order_total"`
}
