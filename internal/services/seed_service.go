package services

import (
	"errors"
	"fmt"

	"crmdesk/internal/models"
	"crmdesk/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
)

// SeedService generates realistic fake customers for development
// environments.
type SeedService struct {
	customerRepo repositories.CustomerRepositoryInterface
}

// NewSeedService creates a new seed service
func NewSeedService(customerRepo repositories.CustomerRepositoryInterface) SeedServiceInterface {
	return &SeedService{
		customerRepo: customerRepo,
	}
}

// SeedCustomers creates count fake customers and returns the ones that were
// persisted. Generated emails that collide with existing records are
// skipped rather than retried.
func (s *SeedService) SeedCustomers(count int) ([]*models.Customer, error) {
	created := make([]*models.Customer, 0, count)

	for i := 0; i < count; i++ {
		addr := gofakeit.Address()
		customer := &models.Customer{
			FullName:    gofakeit.Name(),
			Email:       gofakeit.Email(),
			PhoneNumber: gofakeit.Phone(),
			Address:     fmt.Sprintf("%s, %s, %s %s", addr.Street, addr.City, addr.State, addr.Zip),
		}

		if err := s.customerRepo.Create(customer); err != nil {
			if errors.Is(err, repositories.ErrEmailAlreadyExists) {
				continue
			}
			return created, fmt.Errorf("failed to seed customer: %w", err)
		}

		created = append(created, customer)
	}

	return created, nil
}
