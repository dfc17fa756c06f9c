package handlers

import (
	"net/http"

	"crmdesk/internal/errors"

	"github.com/labstack/echo/v4"
)

// All handlers respond with the shared envelope {success, data?, message?,
// error?}. Use SendData/SendCreated for successes, SendError for client and
// business failures, and SendSystemError for internal errors that must not
// leak details to the client.

// SendData sends a successful response with the given payload
func SendData(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, errors.Envelope{
		Success: true,
		Data:    data,
	})
}

// SendCreated sends a 201 response with the given payload and message
func SendCreated(c echo.Context, data interface{}, message string) error {
	return c.JSON(http.StatusCreated, errors.Envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// SendMessage sends a successful response carrying a payload and a message
func SendMessage(c echo.Context, data interface{}, message string) error {
	return c.JSON(http.StatusOK, errors.Envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// SendError sends a standardized error response for the given code
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse.Envelope)
}

// SendSystemError wraps an internal error with a generic message
func SendSystemError(c echo.Context, err error) error {
	errorResponse, _ := errors.WrapSystemError(err)
	return c.JSON(http.StatusInternalServerError, errorResponse.Envelope)
}
