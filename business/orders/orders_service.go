package orders

import (
	"context"
	"errors"
	"fmt"

	"storeAnalytics/business/customer"
	"storeAnalytics/business/product"
	"storeAnalytics/business/reports"
	"storeAnalytics/domain"
	"storeAnalytics/pkg/logger"

	"github.com/google/uuid"
)

type OrdersRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id uint) (domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByCustomer(ctx context.Context, customerID uint) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
}

// ReportInvalidator drops cached reports after a write. May be nil when
// caching is disabled.
type ReportInvalidator interface {
	Invalidate(ctx context.Context, reports ...string) error
}

type OrderLine struct {
	ProductID uint64
	Quantity  int
}

type OrdersService struct {
	orderRepo    OrdersRepository
	customerRepo customer.CustomerRepository
	productRepo  product.ProductRepository
	invalidator  ReportInvalidator
}

func NewOrdersService(
	orderRepo OrdersRepository,
	customerRepo customer.CustomerRepository,
	productRepo product.ProductRepository,
	invalidator ReportInvalidator,
) *OrdersService {
	return &OrdersService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		invalidator:  invalidator,
	}
}

// CreateOrder snapshots each product's current price into the order item.
// Later catalog price changes must not rewrite order history.
func (s *OrdersService) CreateOrder(ctx context.Context, customerID uint, lines []OrderLine) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when creating order")
		return domain.Order{}, fmt.Errorf("context error: %w", err)
	}

	if len(lines) == 0 {
		logger.Error("Invalid order data: no items")
		return domain.Order{}, errors.New("order must have at least one item")
	}

	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		logger.Error("customer not found for order", err)
		return domain.Order{}, errors.New("customer not found")
	}

	order := domain.Order{
		OrderNumber: uuid.NewString(),
		CustomerID:  customerID,
		Status:      domain.OrderStatusPending,
	}

	for _, line := range lines {
		if line.Quantity <= 0 {
			logger.Error("Invalid order data: quantity must be positive")
			return domain.Order{}, errors.New("quantity must be greater than 0")
		}

		p, err := s.productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			logger.Error("product not found for order", err)
			return domain.Order{}, errors.New("product not found")
		}

		if p.Stock < line.Quantity {
			logger.Error("Insufficient stock for order", "product_id", p.ID)
			return domain.Order{}, errors.New("insufficient stock")
		}

		order.Items = append(order.Items, domain.OrderItem{
			ProductID: p.ID,
			Quantity:  line.Quantity,
			UnitPrice: p.Price,
		})
	}

	if err := s.orderRepo.CreateOrder(ctx, &order); err != nil {
		logger.Error("failed to create order", err)
		return domain.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	s.invalidateSalesReports(ctx)

	logger.Info("order created successfully", "order_number", order.OrderNumber)

	return order, nil
}

func (s *OrdersService) GetAllOrders(ctx context.Context) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all orders")
		return nil, fmt.Errorf("context error: %w", err)
	}

	return s.orderRepo.FindAll(ctx)
}

func (s *OrdersService) GetOrderByID(ctx context.Context, id uint) (domain.Order, error) {
	if id == 0 {
		logger.Error("invalid order id")
		return domain.Order{}, errors.New("invalid order id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get order by id")
		return domain.Order{}, fmt.Errorf("context error: %w", err)
	}

	return s.orderRepo.FindByID(ctx, id)
}

func (s *OrdersService) GetOrdersByCustomer(ctx context.Context, customerID uint) ([]domain.Order, error) {
	if customerID == 0 {
		logger.Error("invalid customer id")
		return nil, errors.New("invalid customer id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get orders by customer")
		return nil, fmt.Errorf("context error: %w", err)
	}

	return s.orderRepo.FindByCustomer(ctx, customerID)
}

// UpdateOrderStatus accepts any non-empty status; the column is free text.
func (s *OrdersService) UpdateOrderStatus(ctx context.Context, id uint, status string) error {
	if id == 0 {
		logger.Error("invalid order id when updating status")
		return errors.New("invalid order id")
	}

	if status == "" {
		logger.Error("Invalid order data: status is required")
		return errors.New("status is required")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating order status")
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		logger.Error("failed to update order status", err)
		return err
	}

	s.invalidateSalesReports(ctx)

	logger.Info("order status updated", "order_id", id, "status", status)

	return nil
}

func (s *OrdersService) DeleteOrder(ctx context.Context, id uint) error {
	if id == 0 {
		logger.Error("invalid order id when deleting order")
		return errors.New("invalid order id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting order")
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.orderRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete order", err)
		return err
	}

	s.invalidateSalesReports(ctx)

	logger.Info("order deleted", "order_id", id)

	return nil
}

func (s *OrdersService) invalidateSalesReports(ctx context.Context) {
	if s.invalidator == nil {
		return
	}

	err := s.invalidator.Invalidate(ctx,
		reports.ReportCustomerOrderStats,
		reports.ReportARPU,
		reports.ReportOrderSummaries,
	)
	if err != nil {
		logger.Warn("Failed to invalidate cached reports", "error", err)
	}
}
