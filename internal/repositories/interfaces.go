package repositories

import (
	"crmdesk/internal/models"

	"github.com/google/uuid"
)

// CustomerRepositoryInterface defines the database operations for customers
type CustomerRepositoryInterface interface {
	Create(customer *models.Customer) error
	GetByID(id uuid.UUID) (*models.Customer, error)
	GetByEmail(email string) (*models.Customer, error)
	List() ([]*models.Customer, error)
	Update(customer *models.Customer) error
	Delete(id uuid.UUID) (*models.Customer, error)
	Search(query string) ([]*models.Customer, error)
	Count() (int64, error)
}
