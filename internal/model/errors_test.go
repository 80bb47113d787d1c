package model

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// ============================================================================
// Error() Interface Tests
// ============================================================================

func TestAPIError_Error_ReturnsFormattedMessage(t *testing.T) {
	t.Parallel()

	apiErr := &APIError{
		Status:  http.StatusNotFound,
		Message: "Speaker not found",
	}

	errMsg := apiErr.Error()

	if !strings.Contains(errMsg, "404") {
		t.Errorf("error message should contain status code, got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "Speaker not found") {
		t.Errorf("error message should contain message, got: %s", errMsg)
	}
}

// ============================================================================
// WriteJSON Tests
// ============================================================================

func TestAPIError_WriteJSON_SetsStatusAndBody(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewValidationError("Please fill Speaker name").WriteJSON(rr)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json content type, got %s", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["message"] != "Please fill Speaker name" {
		t.Errorf("expected validation message, got %q", body["message"])
	}
	if _, ok := body["status"]; ok {
		t.Error("status must not appear in the response body")
	}
}

// ============================================================================
// Constructor Tests
// ============================================================================

func TestNewUnauthorizedError_FixedMessage(t *testing.T) {
	t.Parallel()

	apiErr := NewUnauthorizedError()

	if apiErr.Status != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", apiErr.Status)
	}
	if apiErr.Message != "User is not logged in" {
		t.Errorf("expected fixed denial message, got %q", apiErr.Message)
	}
}

func TestNewForbiddenError_FixedMessage(t *testing.T) {
	t.Parallel()

	apiErr := NewForbiddenError()

	if apiErr.Status != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", apiErr.Status)
	}
	if apiErr.Message != "User is not authorized" {
		t.Errorf("expected fixed denial message, got %q", apiErr.Message)
	}
}

func TestNewNotFoundError_IncludesResource(t *testing.T) {
	t.Parallel()

	apiErr := NewNotFoundError("Speaker")

	if apiErr.Status != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", apiErr.Status)
	}
	if apiErr.Message != "Speaker not found" {
		t.Errorf("expected resource in message, got %q", apiErr.Message)
	}
}

func TestNewInternalError_DefaultsMessage(t *testing.T) {
	t.Parallel()

	apiErr := NewInternalError("")

	if apiErr.Status != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", apiErr.Status)
	}
	if apiErr.Message == "" {
		t.Error("expected a default message")
	}
}
