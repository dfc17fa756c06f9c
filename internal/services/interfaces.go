package services

import (
	"context"
	"time"

	"crmdesk/internal/models"

	"github.com/google/uuid"
)

// CustomerUpdate carries the partial field changes of an update request.
// Empty strings mean "leave unchanged".
type CustomerUpdate struct {
	FullName    string
	Email       string
	PhoneNumber string
	Address     string
}

// CustomerServiceInterface defines the customer business operations
type CustomerServiceInterface interface {
	ListCustomers() ([]*models.Customer, error)
	GetCustomer(id uuid.UUID) (*models.Customer, error)
	CreateCustomer(fullName, email, phoneNumber, address string) (*models.Customer, error)
	UpdateCustomer(id uuid.UUID, update CustomerUpdate) (*models.Customer, error)
	DeleteCustomer(id uuid.UUID) (*models.Customer, error)
	SearchCustomers(query string) ([]*models.Customer, error)
}

// SeedServiceInterface generates fake customers for development
type SeedServiceInterface interface {
	SeedCustomers(count int) ([]*models.Customer, error)
}

// CustomerLoggerInterface provides structured logging for customer operations
type CustomerLoggerInterface interface {
	LogCustomerCreated(ctx context.Context, customerID uuid.UUID, email string)
	LogCustomerUpdated(ctx context.Context, customerID uuid.UUID, updatedFields []string)
	LogCustomerDeleted(ctx context.Context, customerID uuid.UUID)
	LogCustomerSearch(ctx context.Context, resultCount int, durationMs int64)
	LogValidationFailure(ctx context.Context, operation string, errorMsg string)
	LogOperationFailed(ctx context.Context, operation string, errorMsg string)
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64)
}
