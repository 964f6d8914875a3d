package orders

import (
	"context"
	"errors"
	"testing"

	"storeAnalytics/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrdersRepo struct {
	created *domain.Order
	orders  map[uint]domain.Order
	status  map[uint]string
}

func newFakeOrdersRepo() *fakeOrdersRepo {
	return &fakeOrdersRepo{
		orders: make(map[uint]domain.Order),
		status: make(map[uint]string),
	}
}

func (f *fakeOrdersRepo) CreateOrder(ctx context.Context, order *domain.Order) error {
	order.ID = uint(len(f.orders) + 1)
	f.orders[order.ID] = *order
	f.created = order
	return nil
}

func (f *fakeOrdersRepo) FindByID(ctx context.Context, id uint) (domain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return domain.Order{}, errors.New("order not found")
	}
	return order, nil
}

func (f *fakeOrdersRepo) FindAll(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrdersRepo) FindByCustomer(ctx context.Context, customerID uint) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range f.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrdersRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	if _, ok := f.orders[id]; !ok {
		return errors.New("order not found")
	}
	f.status[id] = status
	return nil
}

func (f *fakeOrdersRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := f.orders[id]; !ok {
		return errors.New("order not found")
	}
	delete(f.orders, id)
	return nil
}

type fakeCustomerRepo struct {
	customers map[uint]domain.Customer
}

func (f *fakeCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error { return nil }
func (f *fakeCustomerRepo) FindByEmail(ctx context.Context, email string) (domain.Customer, error) {
	return domain.Customer{}, errors.New("customer not found")
}
func (f *fakeCustomerRepo) FindAll(ctx context.Context) ([]domain.Customer, error) { return nil, nil }
func (f *fakeCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	return nil
}
func (f *fakeCustomerRepo) Delete(ctx context.Context, id uint) error { return nil }

func (f *fakeCustomerRepo) FindByID(ctx context.Context, id uint) (domain.Customer, error) {
	customer, ok := f.customers[id]
	if !ok {
		return domain.Customer{}, errors.New("customer not found")
	}
	return customer, nil
}

type fakeProductRepo struct {
	products map[uint64]domain.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, product *domain.Product) error { return nil }
func (f *fakeProductRepo) FindAll(ctx context.Context) ([]domain.Product, error)     { return nil, nil }
func (f *fakeProductRepo) FindAbovePrice(ctx context.Context, minPrice float64) ([]domain.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(ctx context.Context, product *domain.Product) error { return nil }
func (f *fakeProductRepo) Delete(ctx context.Context, id uint64) error               { return nil }

func (f *fakeProductRepo) FindByID(ctx context.Context, id uint64) (domain.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return domain.Product{}, errors.New("product not found")
	}
	return product, nil
}

type fakeInvalidator struct {
	calls   int
	reports []string
}

func (f *fakeInvalidator) Invalidate(ctx context.Context, reports ...string) error {
	f.calls++
	f.reports = append(f.reports, reports...)
	return nil
}

func newServiceUnderTest() (*OrdersService, *fakeOrdersRepo, *fakeInvalidator) {
	ordersRepo := newFakeOrdersRepo()
	customerRepo := &fakeCustomerRepo{customers: map[uint]domain.Customer{
		1: {ID: 1, FirstName: "Alice", LastName: "Johnson", Email: "alice.johnson@example.com"},
	}}
	productRepo := &fakeProductRepo{products: map[uint64]domain.Product{
		10: {ID: 10, Name: "Laptop", Category: "Electronics", Price: 999.99, Stock: 5},
		11: {ID: 11, Name: "Desk Lamp", Category: "Home", Price: 39.95, Stock: 2},
	}}
	invalidator := &fakeInvalidator{}

	return NewOrdersService(ordersRepo, customerRepo, productRepo, invalidator), ordersRepo, invalidator
}

func TestCreateOrderSnapshotsUnitPrice(t *testing.T) {
	svc, repo, invalidator := newServiceUnderTest()

	order, err := svc.CreateOrder(context.Background(), 1, []OrderLine{
		{ProductID: 10, Quantity: 1},
		{ProductID: 11, Quantity: 2},
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	require.Len(t, order.Items, 2)

	assert.Equal(t, 999.99, order.Items[0].UnitPrice)
	assert.Equal(t, 39.95, order.Items[1].UnitPrice)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.NotEmpty(t, order.OrderNumber)

	// writes drop the cached sales reports
	assert.Equal(t, 1, invalidator.calls)
}

func TestCreateOrderRejectsUnknownCustomer(t *testing.T) {
	svc, _, _ := newServiceUnderTest()

	_, err := svc.CreateOrder(context.Background(), 99, []OrderLine{{ProductID: 10, Quantity: 1}})
	require.Error(t, err)
	assert.Equal(t, "customer not found", err.Error())
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	svc, _, _ := newServiceUnderTest()

	_, err := svc.CreateOrder(context.Background(), 1, nil)
	require.Error(t, err)
	assert.Equal(t, "order must have at least one item", err.Error())
}

func TestCreateOrderRejectsInsufficientStock(t *testing.T) {
	svc, _, _ := newServiceUnderTest()

	_, err := svc.CreateOrder(context.Background(), 1, []OrderLine{{ProductID: 11, Quantity: 3}})
	require.Error(t, err)
	assert.Equal(t, "insufficient stock", err.Error())
}

func TestCreateOrderRejectsNonPositiveQuantity(t *testing.T) {
	svc, _, _ := newServiceUnderTest()

	_, err := svc.CreateOrder(context.Background(), 1, []OrderLine{{ProductID: 10, Quantity: 0}})
	require.Error(t, err)
	assert.Equal(t, "quantity must be greater than 0", err.Error())
}

func TestUpdateOrderStatus(t *testing.T) {
	svc, repo, invalidator := newServiceUnderTest()

	order, err := svc.CreateOrder(context.Background(), 1, []OrderLine{{ProductID: 10, Quantity: 1}})
	require.NoError(t, err)

	err = svc.UpdateOrderStatus(context.Background(), order.ID, domain.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusDelivered, repo.status[order.ID])
	assert.Equal(t, 2, invalidator.calls)
}

func TestUpdateOrderStatusRejectsEmptyStatus(t *testing.T) {
	svc, _, _ := newServiceUnderTest()

	err := svc.UpdateOrderStatus(context.Background(), 1, "")
	require.Error(t, err)
	assert.Equal(t, "status is required", err.Error())
}

func TestDeleteOrderUnknownID(t *testing.T) {
	svc, _, _ := newServiceUnderTest()

	err := svc.DeleteOrder(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, "order not found", err.Error())
}
