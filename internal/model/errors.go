package model

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Fixed denial messages. These exact strings are part of the API contract
// and are asserted by clients.
const (
	MsgNotLoggedIn   = "User is not logged in"
	MsgNotAuthorized = "User is not authorized"
)

// APIError is an error that maps to an HTTP response with a
// {"message": "..."} body. The status code travels out of band.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Status, e.Message)
}

// WriteJSON writes the error as a JSON response
func (e *APIError) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	_ = json.NewEncoder(w).Encode(e)
}

// Common error constructors

// NewUnauthorizedError returns the fixed 401 denial.
func NewUnauthorizedError() *APIError {
	return &APIError{
		Status:  http.StatusUnauthorized,
		Message: MsgNotLoggedIn,
	}
}

// NewForbiddenError returns the fixed 403 denial.
func NewForbiddenError() *APIError {
	return &APIError{
		Status:  http.StatusForbidden,
		Message: MsgNotAuthorized,
	}
}

func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError wraps a constraint-violation message as a 400 response.
func NewValidationError(message string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

func NewBadRequestError(message string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

func NewConflictError(message string) *APIError {
	return &APIError{
		Status:  http.StatusConflict,
		Message: message,
	}
}

func NewInternalError(message string) *APIError {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return &APIError{
		Status:  http.StatusInternalServerError,
		Message: message,
	}
}
