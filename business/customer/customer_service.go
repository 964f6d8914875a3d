package customer

import (
	"context"
	"errors"
	"fmt"

	"storeAnalytics/domain"
	"storeAnalytics/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// CustomerRepository contract interface
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	FindByID(ctx context.Context, id uint) (domain.Customer, error)
	FindByEmail(ctx context.Context, email string) (domain.Customer, error)
	FindAll(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id uint) error
}

type customerService struct {
	customerRepo CustomerRepository
	validate     *validator.Validate
}

func NewCustomerService(customerRepo CustomerRepository, validate *validator.Validate) *customerService {
	return &customerService{
		customerRepo: customerRepo,
		validate:     validate,
	}
}

func (s *customerService) GetAllCustomers(ctx context.Context) ([]domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all customers")
		return nil, fmt.Errorf("context error: %w", err)
	}

	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all customers", err)
		return nil, err
	}

	return customers, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, id uint) (domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get customer by id")
		return domain.Customer{}, fmt.Errorf("context error: %w", err)
	}

	if id == 0 {
		logger.Error("Invalid customer id")
		return domain.Customer{}, errors.New("invalid customer id")
	}

	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find customer", err)
		return domain.Customer{}, err
	}

	return customer, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create customer")
		return nil, fmt.Errorf("context error: %w", err)
	}

	// Validation
	if customer.FirstName == "" {
		logger.Error("Invalid customer data: first name is required")
		return nil, errors.New("first name is required")
	}

	if customer.LastName == "" {
		logger.Error("Invalid customer data: last name is required")
		return nil, errors.New("last name is required")
	}

	if err := s.validate.Var(customer.Email, "required,email"); err != nil {
		logger.Error("Invalid email format", err)
		return nil, errors.New("invalid email format")
	}

	// Email uniqueness check ahead of the DB constraint for a clean error
	existing, err := s.customerRepo.FindByEmail(ctx, customer.Email)
	if err == nil && existing.ID > 0 {
		logger.Error("Email already exists", "email", customer.Email)
		return nil, errors.New("email already exists")
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		logger.Error("failed to create new customer", err)
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	logger.Info("customer created successfully")

	return customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating customer")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if customer.ID == 0 {
		logger.Error("Invalid customer data: ID is required")
		return nil, errors.New("customer ID is required")
	}

	if err := s.validate.Var(customer.Email, "required,email"); err != nil {
		logger.Error("Invalid email format", err)
		return nil, errors.New("invalid email format")
	}

	// Verify customer exists
	_, err := s.customerRepo.FindByID(ctx, customer.ID)
	if err != nil {
		logger.Error("customer not found", err)
		return nil, errors.New("customer not found")
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		logger.Error("failed to update customer", err)
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	updatedCustomer, err := s.customerRepo.FindByID(ctx, customer.ID)
	if err != nil {
		logger.Error("failed to fetch updated customer", err)
		return nil, fmt.Errorf("failed to fetch updated customer: %w", err)
	}

	logger.Info("customer updated successfully")

	return &updatedCustomer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id uint) error {
	if id == 0 {
		logger.Error("Invalid customer id when deleting customer")
		return errors.New("invalid customer id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting customer")
		return fmt.Errorf("context error: %w", err)
	}

	// Verify customer exists
	_, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("customer not found", err)
		return errors.New("customer not found")
	}

	if err := s.customerRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete customer", err)
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	logger.Info("customer deleted successfully")

	return nil
}
