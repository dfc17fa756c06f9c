package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// CustomerLogger provides structured logging for customer-related operations
type CustomerLogger struct {
	logger *slog.Logger
}

// NewCustomerLogger creates a new customer logger
func NewCustomerLogger(logger *slog.Logger) CustomerLoggerInterface {
	return &CustomerLogger{
		logger: logger,
	}
}

// LogCustomerCreated logs customer creation
func (cl *CustomerLogger) LogCustomerCreated(ctx context.Context, customerID uuid.UUID, email string) {
	cl.logger.InfoContext(ctx, "customer created",
		slog.String("event_type", "customer_created"),
		slog.String("customer_id", customerID.String()),
		slog.String("email", email),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogCustomerUpdated logs customer updates
func (cl *CustomerLogger) LogCustomerUpdated(ctx context.Context, customerID uuid.UUID, updatedFields []string) {
	cl.logger.InfoContext(ctx, "customer updated",
		slog.String("event_type", "customer_updated"),
		slog.String("customer_id", customerID.String()),
		slog.Any("updated_fields", updatedFields),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogCustomerDeleted logs customer deletion
func (cl *CustomerLogger) LogCustomerDeleted(ctx context.Context, customerID uuid.UUID) {
	cl.logger.InfoContext(ctx, "customer deleted",
		slog.String("event_type", "customer_deleted"),
		slog.String("customer_id", customerID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogCustomerSearch logs a completed customer search
func (cl *CustomerLogger) LogCustomerSearch(ctx context.Context, resultCount int, durationMs int64) {
	cl.logger.InfoContext(ctx, "customer search completed",
		slog.String("event_type", "customer_search_completed"),
		slog.Int("result_count", resultCount),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogValidationFailure logs validation failures
func (cl *CustomerLogger) LogValidationFailure(ctx context.Context, operation string, errorMsg string) {
	cl.logger.WarnContext(ctx, "validation failure",
		slog.String("event_type", "validation_failure"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogOperationFailed logs failed operations
func (cl *CustomerLogger) LogOperationFailed(ctx context.Context, operation string, errorMsg string) {
	cl.logger.ErrorContext(ctx, "operation failed",
		slog.String("event_type", "operation_failed"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value("request_id").(string); ok {
		return requestID
	}
	return ""
}
