package handler

import (
	"errors"

	"github.com/podiumhq/podium/internal/database"
	"github.com/podiumhq/podium/internal/model"
	"github.com/podiumhq/podium/internal/service"
)

// MapServiceError converts a service error to an APIError response.
// This centralizes error handling logic for all handlers, ensuring
// consistent HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.APIError {
	if err == nil {
		return nil
	}

	// Pass through errors that already carry a status
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError()

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrSpeakerNotFound):
		return model.NewNotFoundError("Speaker")
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("User")

	// ===== Validation Errors → 400 =====
	case errors.Is(err, service.ErrSpeakerNameRequired),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrPasswordTooLong):
		return model.NewValidationError(err.Error())

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrEmailAlreadyExists):
		return model.NewConflictError(err.Error())

	// ===== Store Query Errors → 400 =====
	// Rejected writes (schema assertions, bad record ids) surface the
	// store's message so clients can see what the database refused.
	case errors.Is(err, database.ErrQuery):
		return model.NewBadRequestError(err.Error())

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("An unexpected error occurred")
	}
}
