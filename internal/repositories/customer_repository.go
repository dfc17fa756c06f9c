package repositories

import (
	"errors"
	"fmt"
	"strings"

	"crmdesk/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// CustomerRepository handles database operations for customers
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepositoryInterface {
	return &CustomerRepository{
		db: db,
	}
}

// Create creates a new customer in the database
func (r *CustomerRepository) Create(customer *models.Customer) error {
	if customer == nil {
		return errors.New("customer cannot be nil")
	}

	if err := r.db.Create(customer).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

// GetByID retrieves a customer by their ID
func (r *CustomerRepository) GetByID(id uuid.UUID) (*models.Customer, error) {
	customer := &models.Customer{ID: id}
	if err := r.db.First(customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by ID: %w", err)
	}

	return customer, nil
}

// GetByEmail retrieves a customer by their email address
func (r *CustomerRepository) GetByEmail(email string) (*models.Customer, error) {
	var customer models.Customer

	if err := r.db.Where("email = ?", strings.ToLower(email)).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by email: %w", err)
	}

	return &customer, nil
}

// List returns all customers, newest first
func (r *CustomerRepository) List() ([]*models.Customer, error) {
	var customers []*models.Customer

	if err := r.db.Order("created_at DESC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, nil
}

// Update saves the full customer record
func (r *CustomerRepository) Update(customer *models.Customer) error {
	if customer == nil {
		return errors.New("customer cannot be nil")
	}

	if err := r.db.Save(customer).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to update customer: %w", err)
	}

	return nil
}

// Delete removes a customer permanently and returns the deleted record
func (r *CustomerRepository) Delete(id uuid.UUID) (*models.Customer, error) {
	customer, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Delete(&models.Customer{ID: id})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrCustomerNotFound
	}

	return customer, nil
}

// Search performs a case-insensitive substring match across full name,
// email and phone number, newest first
func (r *CustomerRepository) Search(query string) ([]*models.Customer, error) {
	var customers []*models.Customer

	pattern := "%" + strings.ToLower(query) + "%"
	if err := r.db.
		Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(phone_number) LIKE ?",
			pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}

	return customers, nil
}

// Count returns the number of customers
func (r *CustomerRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Customer{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	// Postgres and sqlite duplicate key error detection
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}
