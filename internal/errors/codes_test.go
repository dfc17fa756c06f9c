package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Please provide all required fields",
		},
		{
			name:     "Validation Invalid Email",
			code:     ValidationInvalidEmail,
			expected: "Please provide a valid email address",
		},
		{
			name:     "Customer Not Found",
			code:     CustomerNotFound,
			expected: "Customer not found",
		},
		{
			name:     "Customer Already Exists",
			code:     CustomerAlreadyExists,
			expected: "Email already exists",
		},
		{
			name:     "Customer Invalid ID",
			code:     CustomerInvalidID,
			expected: "Invalid customer ID format",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An unexpected error occurred",
		},
		{
			name:     "System Route Not Found",
			code:     SystemRouteNotFound,
			expected: "Route not found",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			message := GetErrorMessage(tc.code)
			s.Equal(tc.expected, message)
		})
	}
}

// TestGetErrorMessage_InvalidCode tests getting message for invalid error code
func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	message := GetErrorMessage("INVALID_CODE")
	s.Equal("An error occurred", message)
}

// TestIsValidErrorCode_ValidCodes tests validation of valid error codes
func (s *CodesTestSuite) TestIsValidErrorCode_ValidCodes() {
	validCodes := []ErrorCode{
		ValidationGeneral,
		ValidationRequiredField,
		ValidationInvalidFormat,
		ValidationInvalidEmail,
		ValidationInvalidPhone,
		CustomerNotFound,
		CustomerAlreadyExists,
		CustomerInvalidID,
		SystemInternalError,
		SystemDatabaseError,
		SystemServiceUnavailable,
		SystemRateLimitExceeded,
		SystemRouteNotFound,
	}

	for _, code := range validCodes {
		s.True(IsValidErrorCode(code), "expected %s to be valid", code)
	}
}

// TestIsValidErrorCode_InvalidCode tests validation of an unknown code
func (s *CodesTestSuite) TestIsValidErrorCode_InvalidCode() {
	s.False(IsValidErrorCode("CUSTOMER_999"))
	s.False(IsValidErrorCode(""))
}
