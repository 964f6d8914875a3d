package customer

import (
	"context"
	"errors"
	"testing"

	"storeAnalytics/domain"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCustomerRepo struct {
	byID    map[uint]domain.Customer
	byEmail map[string]domain.Customer
	deleted []uint
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{
		byID:    make(map[uint]domain.Customer),
		byEmail: make(map[string]domain.Customer),
	}
}

func (f *fakeCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	customer.ID = uint(len(f.byID) + 1)
	f.byID[customer.ID] = *customer
	f.byEmail[customer.Email] = *customer
	return nil
}

func (f *fakeCustomerRepo) FindByID(ctx context.Context, id uint) (domain.Customer, error) {
	customer, ok := f.byID[id]
	if !ok {
		return domain.Customer{}, errors.New("customer not found")
	}
	return customer, nil
}

func (f *fakeCustomerRepo) FindByEmail(ctx context.Context, email string) (domain.Customer, error) {
	customer, ok := f.byEmail[email]
	if !ok {
		return domain.Customer{}, errors.New("customer not found")
	}
	return customer, nil
}

func (f *fakeCustomerRepo) FindAll(ctx context.Context) ([]domain.Customer, error) {
	var out []domain.Customer
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	if _, ok := f.byID[customer.ID]; !ok {
		return errors.New("customer not found")
	}
	f.byID[customer.ID] = *customer
	return nil
}

func (f *fakeCustomerRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := f.byID[id]; !ok {
		return errors.New("customer not found")
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func TestCreateCustomer(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo, validator.New())

	created, err := svc.CreateCustomer(context.Background(), &domain.Customer{
		FirstName: "Alice",
		LastName:  "Johnson",
		Email:     "alice.johnson@example.com",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestCreateCustomerRejectsInvalidEmail(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo(), validator.New())

	_, err := svc.CreateCustomer(context.Background(), &domain.Customer{
		FirstName: "Alice",
		LastName:  "Johnson",
		Email:     "not-an-email",
	})
	require.Error(t, err)
	assert.Equal(t, "invalid email format", err.Error())
}

func TestCreateCustomerRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo, validator.New())

	_, err := svc.CreateCustomer(context.Background(), &domain.Customer{
		FirstName: "Alice",
		LastName:  "Johnson",
		Email:     "alice.johnson@example.com",
	})
	require.NoError(t, err)

	_, err = svc.CreateCustomer(context.Background(), &domain.Customer{
		FirstName: "Alice",
		LastName:  "Jensen",
		Email:     "alice.johnson@example.com",
	})
	require.Error(t, err)
	assert.Equal(t, "email already exists", err.Error())
}

func TestCreateCustomerRequiresNames(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo(), validator.New())

	_, err := svc.CreateCustomer(context.Background(), &domain.Customer{
		LastName: "Johnson",
		Email:    "alice.johnson@example.com",
	})
	require.Error(t, err)
	assert.Equal(t, "first name is required", err.Error())
}

func TestDeleteCustomerUnknownID(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo(), validator.New())

	err := svc.DeleteCustomer(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, "customer not found", err.Error())
}

func TestGetCustomerByIDRejectsZero(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo(), validator.New())

	_, err := svc.GetCustomerByID(context.Background(), 0)
	require.Error(t, err)
	assert.Equal(t, "invalid customer id", err.Error())
}
