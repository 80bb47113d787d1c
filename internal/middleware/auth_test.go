package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/podiumhq/podium/internal/model"
	"github.com/podiumhq/podium/pkg/jwt"
)

type mockValidator struct {
	claims *jwt.Claims
	err    error
}

func (m *mockValidator) ValidateAccessToken(token string) (*jwt.Claims, error) {
	return m.claims, m.err
}

func validClaims() *jwt.Claims {
	return &jwt.Claims{
		UserID:      "user:alice",
		Email:       "alice@example.com",
		DisplayName: "Alice",
	}
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return body.Message
}

func TestAuth_ValidToken(t *testing.T) {
	t.Parallel()

	validator := &mockValidator{claims: validClaims()}

	var userID string
	var claims *jwt.Claims
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID = GetUserID(r.Context())
		claims = GetClaims(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if userID != "user:alice" {
		t.Errorf("expected user ID in context, got %q", userID)
	}
	if claims == nil || claims.Email != "alice@example.com" {
		t.Error("expected claims in context")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	t.Parallel()

	handler := Auth(&mockValidator{claims: validClaims()})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != model.MsgNotLoggedIn {
		t.Errorf("expected %q, got %q", model.MsgNotLoggedIn, msg)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		header string
	}{
		{"no scheme", "sometoken"},
		{"wrong scheme", "Basic sometoken"},
		{"empty token", "Bearer "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := Auth(&mockValidator{claims: validClaims()})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler should not be called")
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", tc.header)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected status 401, got %d", rec.Code)
			}
		})
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	t.Parallel()

	handler := Auth(&mockValidator{err: errors.New("invalid token")})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer badtoken")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != model.MsgNotLoggedIn {
		t.Errorf("expected %q, got %q", model.MsgNotLoggedIn, msg)
	}
}

func TestAuth_CaseInsensitiveScheme(t *testing.T) {
	t.Parallel()

	handler := Auth(&mockValidator{claims: validClaims()})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer sometoken")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

func TestGetUserID_MissingFromContext(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if id := GetUserID(req.Context()); id != "" {
		t.Errorf("expected empty string, got %q", id)
	}
}

func TestGetClaims_MissingFromContext(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if claims := GetClaims(req.Context()); claims != nil {
		t.Errorf("expected nil, got %+v", claims)
	}
}
