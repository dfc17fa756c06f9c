package services

import (
	"errors"
	"fmt"
	"strings"

	"crmdesk/internal/models"
	"crmdesk/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// CustomerService implements the customer business operations
type CustomerService struct {
	customerRepo repositories.CustomerRepositoryInterface
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repositories.CustomerRepositoryInterface) CustomerServiceInterface {
	return &CustomerService{
		customerRepo: customerRepo,
	}
}

// ListCustomers returns all customers, newest first
func (s *CustomerService) ListCustomers() ([]*models.Customer, error) {
	customers, err := s.customerRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// GetCustomer returns the customer with the given ID
func (s *CustomerService) GetCustomer(id uuid.UUID) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

// CreateCustomer creates a customer after an explicit duplicate-email check.
// Email uniqueness is also enforced by the database index; the explicit
// check exists to surface the friendly conflict message.
func (s *CustomerService) CreateCustomer(fullName, email, phoneNumber, address string) (*models.Customer, error) {
	if _, err := s.customerRepo.GetByEmail(email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, repositories.ErrCustomerNotFound) {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	customer := &models.Customer{
		FullName:    fullName,
		Email:       email,
		PhoneNumber: phoneNumber,
		Address:     address,
	}

	if err := s.customerRepo.Create(customer); err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return customer, nil
}

// UpdateCustomer merges the non-empty fields of the update into the stored
// record. An empty string leaves the stored value unchanged; there is no
// way to clear a field through this operation.
func (s *CustomerService) UpdateCustomer(id uuid.UUID, update CustomerUpdate) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	if update.Email != "" && strings.ToLower(update.Email) != customer.Email {
		if _, err := s.customerRepo.GetByEmail(update.Email); err == nil {
			return nil, ErrEmailAlreadyExists
		} else if !errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
	}

	if update.FullName != "" {
		customer.FullName = update.FullName
	}
	if update.Email != "" {
		customer.Email = update.Email
	}
	if update.PhoneNumber != "" {
		customer.PhoneNumber = update.PhoneNumber
	}
	if update.Address != "" {
		customer.Address = update.Address
	}

	if err := s.customerRepo.Update(customer); err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return customer, nil
}

// DeleteCustomer removes the customer permanently and returns the deleted
// record so the caller can echo it back
func (s *CustomerService) DeleteCustomer(id uuid.UUID) (*models.Customer, error) {
	customer, err := s.customerRepo.Delete(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to delete customer: %w", err)
	}
	return customer, nil
}

// SearchCustomers performs a case-insensitive match across name, email and
// phone number
func (s *CustomerService) SearchCustomers(query string) ([]*models.Customer, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("search query cannot be empty")
	}

	customers, err := s.customerRepo.Search(query)
	if err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	return customers, nil
}
