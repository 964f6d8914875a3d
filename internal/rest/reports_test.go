package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storeAnalytics/domain"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportsService struct {
	arpu     float64
	products []domain.Product
	lone     []domain.Customer
}

func (f *fakeReportsService) ProductsAbovePrice(ctx context.Context, minPrice float64) ([]domain.Product, error) {
	return f.products, nil
}

func (f *fakeReportsService) InventoryValueByCategory(ctx context.Context) ([]domain.CategoryInventoryValue, error) {
	return nil, nil
}

func (f *fakeReportsService) CustomerOrderStats(ctx context.Context) ([]domain.CustomerOrderStats, error) {
	return nil, nil
}

func (f *fakeReportsService) ProductsInDeliveredOrders(ctx context.Context) ([]domain.Product, error) {
	return f.products, nil
}

func (f *fakeReportsService) CustomersWithoutOrders(ctx context.Context) ([]domain.Customer, error) {
	return f.lone, nil
}

func (f *fakeReportsService) CategoriesAboveSales(ctx context.Context, threshold float64) ([]domain.CategorySales, error) {
	return nil, nil
}

func (f *fakeReportsService) AverageRevenuePerCustomer(ctx context.Context) (float64, error) {
	return f.arpu, nil
}

func (f *fakeReportsService) OrderSummaries(ctx context.Context) ([]domain.OrderSummary, error) {
	return nil, nil
}

func TestAverageRevenuePerCustomerHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/arpu", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewReportsHandler(&fakeReportsService{arpu: 428.4475})

	err := h.AverageRevenuePerCustomer(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.InDelta(t, 428.4475, body["average_revenue_per_customer"], 0.0001)
}

func TestProductsAbovePriceHandlerRejectsBadParam(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/products-above-price?min_price=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewReportsHandler(&fakeReportsService{})

	err := h.ProductsAbovePrice(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCustomersWithoutOrdersHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/customers-without-orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewReportsHandler(&fakeReportsService{
		lone: []domain.Customer{{ID: 5, FirstName: "Emma", LastName: "Wright", Email: "emma.wright@example.com"}},
	})

	err := h.CustomersWithoutOrders(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Customers []domain.Customer `json:"customers"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Customers, 1)
	assert.Equal(t, "emma.wright@example.com", body.Customers[0].Email)
}
