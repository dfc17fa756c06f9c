package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_004"
	ValidationInvalidPhone  ErrorCode = "VALIDATION_005"
)

// Customer error codes (CUSTOMER_*)
const (
	CustomerNotFound      ErrorCode = "CUSTOMER_001"
	CustomerAlreadyExists ErrorCode = "CUSTOMER_002"
	CustomerInvalidID     ErrorCode = "CUSTOMER_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
	SystemRouteNotFound      ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Please provide all required fields",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidEmail:  "Please provide a valid email address",
	ValidationInvalidPhone:  "Please provide a valid phone number",

	// Customer errors
	CustomerNotFound:      "Customer not found",
	CustomerAlreadyExists: "Email already exists",
	CustomerInvalidID:     "Invalid customer ID format",

	// System errors
	SystemInternalError:      "An unexpected error occurred",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Route not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
