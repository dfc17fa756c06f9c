package handlers

import (
	"net/http"

	"crmdesk/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db *gorm.DB
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db *gorm.DB) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// HealthCheck reports API and database connectivity status
//
// GET /api/health
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return h.unavailable(c)
	}

	if err := sqlDB.PingContext(c.Request().Context()); err != nil {
		return h.unavailable(c)
	}

	return c.JSON(http.StatusOK, errors.Envelope{
		Success: true,
		Message: "Server is running",
	})
}

func (h *HealthCheckHandler) unavailable(c echo.Context) error {
	errorResponse := errors.NewErrorResponse(
		errors.SystemServiceUnavailable,
		errors.WithDetail("Database connection failed"),
	)
	return c.JSON(http.StatusServiceUnavailable, errorResponse.Envelope)
}
