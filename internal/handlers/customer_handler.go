package handlers

import (
	"time"

	"crmdesk/internal/dto"
	"crmdesk/internal/errors"
	"crmdesk/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService services.CustomerServiceInterface
	logger          services.CustomerLoggerInterface
	metrics         services.MetricsRecorderInterface
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(
	customerService services.CustomerServiceInterface,
	logger services.CustomerLoggerInterface,
	metrics services.MetricsRecorderInterface,
) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		logger:          logger,
		metrics:         metrics,
	}
}

// ListCustomers returns all customers, newest first
//
// GET /api/customers
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	customers, err := h.customerService.ListCustomers()
	if err != nil {
		h.logger.LogOperationFailed(c.Request().Context(), "customer_list", err.Error())
		return SendSystemError(c, err)
	}

	h.metrics.RecordGauge("customers_total", float64(len(customers)))
	return SendData(c, customers)
}

// GetCustomer returns a single customer by ID
//
// GET /api/customers/:id
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.CustomerInvalidID)
	}

	customer, err := h.customerService.GetCustomer(customerID)
	if err != nil {
		if err == services.ErrCustomerNotFound {
			return SendError(c, errors.CustomerNotFound)
		}
		return SendSystemError(c, err)
	}

	return SendData(c, customer)
}

// CreateCustomer creates a new customer
//
// POST /api/customers
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		h.logger.LogValidationFailure(ctx, "customer_create", err.Error())
		return SendError(c, errors.ValidationGeneral, errors.WithDetail("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		h.logger.LogValidationFailure(ctx, "customer_create", err.Error())
		return SendError(c, errors.ValidationGeneral, errors.WithDetail(err.Error()))
	}

	customer, err := h.customerService.CreateCustomer(req.FullName, req.Email, req.PhoneNumber, req.Address)
	if err != nil {
		if err == services.ErrEmailAlreadyExists {
			return SendError(c, errors.CustomerAlreadyExists)
		}
		h.logger.LogOperationFailed(ctx, "customer_create", err.Error())
		return SendError(c, errors.ValidationGeneral, errors.WithMessage("Failed to create customer"), errors.WithDetail(err.Error()))
	}

	h.metrics.IncrementCounter("customer_created", nil)
	h.logger.LogCustomerCreated(ctx, customer.ID, customer.Email)

	return SendCreated(c, customer, "Customer created successfully")
}

// UpdateCustomer applies a partial update to a customer
//
// PUT /api/customers/:id
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.CustomerInvalidID)
	}

	var req dto.UpdateCustomerRequest
	if err := c.Bind(&req); err != nil {
		h.logger.LogValidationFailure(ctx, "customer_update", err.Error())
		return SendError(c, errors.ValidationGeneral, errors.WithDetail("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		h.logger.LogValidationFailure(ctx, "customer_update", err.Error())
		return SendError(c, errors.ValidationGeneral, errors.WithDetail(err.Error()))
	}

	customer, err := h.customerService.UpdateCustomer(customerID, services.CustomerUpdate{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		if err == services.ErrCustomerNotFound {
			return SendError(c, errors.CustomerNotFound)
		}
		if err == services.ErrEmailAlreadyExists {
			return SendError(c, errors.CustomerAlreadyExists)
		}
		h.logger.LogOperationFailed(ctx, "customer_update", err.Error())
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("customer_updated", nil)
	h.logger.LogCustomerUpdated(ctx, customer.ID, updatedFields(req))

	return SendMessage(c, customer, "Customer updated successfully")
}

// DeleteCustomer removes a customer permanently
//
// DELETE /api/customers/:id
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.CustomerInvalidID)
	}

	customer, err := h.customerService.DeleteCustomer(customerID)
	if err != nil {
		if err == services.ErrCustomerNotFound {
			return SendError(c, errors.CustomerNotFound)
		}
		h.logger.LogOperationFailed(ctx, "customer_delete", err.Error())
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("customer_deleted", nil)
	h.logger.LogCustomerDeleted(ctx, customer.ID)

	// The deleted record is echoed back so clients can snapshot it for undo
	return SendMessage(c, customer, "Customer deleted successfully")
}

// SearchCustomers performs a case-insensitive match across name, email and
// phone number
//
// GET /api/customers/search?query=
func (h *CustomerHandler) SearchCustomers(c echo.Context) error {
	ctx := c.Request().Context()
	startTime := time.Now()

	var req dto.SearchCustomersRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetail("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithMessage("Please provide a search query"))
	}

	customers, err := h.customerService.SearchCustomers(req.Query)
	duration := time.Since(startTime)

	if err != nil {
		h.metrics.IncrementCounter("customer_search_request", map[string]string{"status": "failed"})
		h.logger.LogOperationFailed(ctx, "customer_search", err.Error())
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("customer_search_request", map[string]string{"status": "success"})
	h.metrics.RecordProcessingTime("customer_search", duration)
	h.logger.LogCustomerSearch(ctx, len(customers), duration.Milliseconds())

	return SendData(c, customers)
}

func updatedFields(req dto.UpdateCustomerRequest) []string {
	fields := make([]string, 0, 4)
	if req.FullName != "" {
		fields = append(fields, "fullName")
	}
	if req.Email != "" {
		fields = append(fields, "email")
	}
	if req.PhoneNumber != "" {
		fields = append(fields, "phoneNumber")
	}
	if req.Address != "" {
		fields = append(fields, "address")
	}
	return fields
}
