package reports

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"storeAnalytics/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	arpu              float64
	arpuCalls         int
	stats             []domain.CustomerOrderStats
	statsCalls        int
	categorySales     []domain.CategorySales
	salesThreshold    float64
	inventory         []domain.CategoryInventoryValue
	deliveredProducts []domain.Product
	loneCustomers     []domain.Customer
	summaries         []domain.OrderSummary
	err               error
}

func (f *fakeReportRepo) InventoryValueByCategory(ctx context.Context) ([]domain.CategoryInventoryValue, error) {
	return f.inventory, f.err
}

func (f *fakeReportRepo) CustomerOrderStats(ctx context.Context) ([]domain.CustomerOrderStats, error) {
	f.statsCalls++
	return f.stats, f.err
}

func (f *fakeReportRepo) ProductsInDeliveredOrders(ctx context.Context) ([]domain.Product, error) {
	return f.deliveredProducts, f.err
}

func (f *fakeReportRepo) CustomersWithoutOrders(ctx context.Context) ([]domain.Customer, error) {
	return f.loneCustomers, f.err
}

func (f *fakeReportRepo) CategoriesAboveSales(ctx context.Context, threshold float64) ([]domain.CategorySales, error) {
	f.salesThreshold = threshold
	return f.categorySales, f.err
}

func (f *fakeReportRepo) AverageRevenuePerCustomer(ctx context.Context) (float64, error) {
	f.arpuCalls++
	return f.arpu, f.err
}

func (f *fakeReportRepo) OrderSummaries(ctx context.Context) ([]domain.OrderSummary, error) {
	return f.summaries, f.err
}

type fakeProductLister struct {
	products []domain.Product
	minPrice float64
}

func (f *fakeProductLister) FindAbovePrice(ctx context.Context, minPrice float64) ([]domain.Product, error) {
	f.minPrice = minPrice
	return f.products, nil
}

// in-memory stand-in for the Redis report cache
type fakeCache struct {
	data map[string][]byte
	sets int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, report string, dest interface{}) error {
	raw, ok := f.data[report]
	if !ok {
		return errors.New("cache miss")
	}
	return json.Unmarshal(raw, dest)
}

func (f *fakeCache) Set(ctx context.Context, report string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[report] = raw
	f.sets++
	return nil
}

func TestAverageRevenuePerCustomer(t *testing.T) {
	repo := &fakeReportRepo{arpu: 428.4475}
	svc := NewReportsService(repo, &fakeProductLister{}, nil)

	arpu, err := svc.AverageRevenuePerCustomer(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 428.4475, arpu, 0.0001)
}

func TestAverageRevenuePerCustomerUsesCache(t *testing.T) {
	repo := &fakeReportRepo{arpu: 100}
	cache := newFakeCache()
	svc := NewReportsService(repo, &fakeProductLister{}, cache)

	ctx := context.Background()

	// first read misses the cache and stores the result
	arpu, err := svc.AverageRevenuePerCustomer(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100.0, arpu)
	assert.Equal(t, 1, repo.arpuCalls)
	assert.Equal(t, 1, cache.sets)

	// second read is served from the cache
	arpu, err = svc.AverageRevenuePerCustomer(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100.0, arpu)
	assert.Equal(t, 1, repo.arpuCalls)
}

func TestCustomerOrderStatsCachesRows(t *testing.T) {
	repo := &fakeReportRepo{
		stats: []domain.CustomerOrderStats{
			{CustomerID: 1, FirstName: "Alice", OrderCount: 2, TotalRevenue: 1197.99},
		},
	}
	cache := newFakeCache()
	svc := NewReportsService(repo, &fakeProductLister{}, cache)

	ctx := context.Background()

	first, err := svc.CustomerOrderStats(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.CustomerOrderStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.statsCalls)
}

func TestProductsAbovePriceRejectsNegative(t *testing.T) {
	svc := NewReportsService(&fakeReportRepo{}, &fakeProductLister{}, nil)

	_, err := svc.ProductsAbovePrice(context.Background(), -1)
	require.Error(t, err)
	assert.Equal(t, "min price cannot be negative", err.Error())
}

func TestProductsAbovePricePassesFloor(t *testing.T) {
	lister := &fakeProductLister{
		products: []domain.Product{{ID: 1, Name: "Laptop", Price: 999.99}},
	}
	svc := NewReportsService(&fakeReportRepo{}, lister, nil)

	products, err := svc.ProductsAbovePrice(context.Background(), 100)
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, 100.0, lister.minPrice)
}

func TestCategoriesAboveSalesRejectsNegativeThreshold(t *testing.T) {
	svc := NewReportsService(&fakeReportRepo{}, &fakeProductLister{}, nil)

	_, err := svc.CategoriesAboveSales(context.Background(), -5)
	require.Error(t, err)
	assert.Equal(t, "sales threshold cannot be negative", err.Error())
}

func TestCategoriesAboveSalesForwardsThreshold(t *testing.T) {
	repo := &fakeReportRepo{
		categorySales: []domain.CategorySales{{Category: "Electronics", TotalSales: 1287.89}},
	}
	svc := NewReportsService(repo, &fakeProductLister{}, nil)

	rows, err := svc.CategoriesAboveSales(context.Background(), 500)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 500.0, repo.salesThreshold)
}

func TestReportsPropagateRepositoryErrors(t *testing.T) {
	repo := &fakeReportRepo{err: errors.New("db down")}
	svc := NewReportsService(repo, &fakeProductLister{}, nil)

	_, err := svc.CustomersWithoutOrders(context.Background())
	require.Error(t, err)

	_, err = svc.ProductsInDeliveredOrders(context.Background())
	require.Error(t, err)

	_, err = svc.OrderSummaries(context.Background())
	require.Error(t, err)
}

func TestReportsRespectCancelledContext(t *testing.T) {
	svc := NewReportsService(&fakeReportRepo{}, &fakeProductLister{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.InventoryValueByCategory(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
