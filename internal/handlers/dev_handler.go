package handlers

import (
	"fmt"

	"crmdesk/internal/errors"
	"crmdesk/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	seedService services.SeedServiceInterface
	metrics     services.MetricsRecorderInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	seedService services.SeedServiceInterface,
	metrics services.MetricsRecorderInterface,
) *DevHandler {
	return &DevHandler{
		seedService: seedService,
		metrics:     metrics,
	}
}

// SeedCustomers populates the database with fake customers
//
// Method: POST /api/dev/seed
// Environment: Development only
//
// Query parameters:
//   - count: Number of customers to generate (default: 25, max: 500)
func (h *DevHandler) SeedCustomers(c echo.Context) error {
	count := getIntQueryParam(c, "count", 25)
	if count < 1 {
		count = 1
	}
	if count > 500 {
		count = 500
	}

	customers, err := h.seedService.SeedCustomers(count)
	if err != nil {
		return SendError(c, errors.SystemDatabaseError, errors.WithDetail(err.Error()))
	}

	return SendMessage(c, customers, fmt.Sprintf("Seeded %d customers", len(customers)))
}

// Helper function to get integer query parameters
func getIntQueryParam(c echo.Context, key string, defaultValue int) int {
	valueStr := c.QueryParam(key)
	if valueStr == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}
