package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"storeAnalytics/domain"
	"storeAnalytics/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CustomerService interface {
	GetAllCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomerByID(ctx context.Context, id uint) (domain.Customer, error)
	CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id uint) error
}

type CustomerHandler struct {
	customerService CustomerService
	validator       *validator.Validate
	timeout         time.Duration
}

func NewCustomerHandler(customerService CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		validator:       validator.New(),
		timeout:         10 * time.Second,
	}
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

type CreateCustomerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

type UpdateCustomerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

func (h *CustomerHandler) GetAllCustomers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	customers, err := h.customerService.GetAllCustomers(ctx)
	if err != nil {
		logger.Error("Failed to find all customers", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "successfully get all customers",
		"customers": customers,
	})
}

func (h *CustomerHandler) GetCustomerByID(c echo.Context) error {
	customerIDStr := c.Param("id")

	customerID, err := strconv.ParseUint(customerIDStr, 10, 64)
	if err != nil {
		logger.Error("Invalid customer id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid customer id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	customer, err := h.customerService.GetCustomerByID(ctx, uint(customerID))
	if err != nil {
		logger.Error("Failed to find customer", err)
		if err.Error() == "customer not found" || err.Error() == "invalid customer id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully find customer by id",
		"customer": customer,
	})
}

func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req CreateCustomerRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate customer request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	customer := &domain.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}

	newCustomer, err := h.customerService.CreateCustomer(ctx, customer)
	if err != nil {
		logger.Error("Failed to create customer", err)
		if err.Error() == "first name is required" ||
			err.Error() == "last name is required" ||
			err.Error() == "invalid email format" ||
			err.Error() == "email already exists" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":  "Customer successfully created",
		"customer": newCustomer,
	})
}

func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	customerIDStr := c.Param("id")

	customerID, err := strconv.ParseUint(customerIDStr, 10, 64)
	if err != nil {
		logger.Error("Invalid customer id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid customer id"})
	}

	var req UpdateCustomerRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate customer request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	customer := &domain.Customer{
		ID:        uint(customerID),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}

	updatedCustomer, err := h.customerService.UpdateCustomer(ctx, customer)
	if err != nil {
		logger.Error("Failed to update customer", err)
		if err.Error() == "customer not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "customer ID is required" ||
			err.Error() == "invalid email format" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully update customer",
		"customer": updatedCustomer,
	})
}

func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	customerIDStr := c.Param("id")

	customerID, err := strconv.ParseUint(customerIDStr, 10, 64)
	if err != nil {
		logger.Error("Invalid customer id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid customer id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err = h.customerService.DeleteCustomer(ctx, uint(customerID))
	if err != nil {
		logger.Error("Failed to delete customer", err)
		if err.Error() == "customer not found" || err.Error() == "invalid customer id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":     "customer successfully deleted",
		"customer_id": customerID,
	})
}
