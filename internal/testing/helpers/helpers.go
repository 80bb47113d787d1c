// Package helpers provides common test utilities for e2e testing.
//
// This package includes a router builder that wires the full API stack
// over a test database, JWT token generation, HTTP request builders,
// and assertion helpers for testing API endpoints.
package helpers

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/podiumhq/podium/internal/database"
	"github.com/podiumhq/podium/internal/handler"
	"github.com/podiumhq/podium/internal/middleware"
	"github.com/podiumhq/podium/internal/model"
	"github.com/podiumhq/podium/internal/repository"
	"github.com/podiumhq/podium/internal/service"
	"github.com/podiumhq/podium/pkg/jwt"
)

// ============================================================================
// JWT Helpers
// ============================================================================

// JWTHelper provides JWT token generation for tests. The underlying
// service shares its key with the router built by NewTestRouter, so
// generated tokens validate against it.
type JWTHelper struct {
	Service *jwt.Service
	key     *rsa.PrivateKey
}

// NewJWTHelper creates a new JWT helper with an in-memory key
func NewJWTHelper(t *testing.T) *JWTHelper {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("helpers: failed to generate RSA key: %v", err)
	}

	return &JWTHelper{
		Service: jwt.NewTestService(key, "podium-test", time.Hour),
		key:     key,
	}
}

// GenerateToken creates a valid JWT token for testing
func (h *JWTHelper) GenerateToken(t *testing.T, user *model.User) string {
	t.Helper()

	token, err := h.Service.Sign(jwt.Claims{
		Subject:     user.ID,
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	})
	if err != nil {
		t.Fatalf("helpers: failed to sign token: %v", err)
	}
	return token
}

// GenerateExpiredToken creates an expired JWT token for testing
func (h *JWTHelper) GenerateExpiredToken(t *testing.T, user *model.User) string {
	t.Helper()

	expired := jwt.NewTestService(h.key, "podium-test", -time.Hour)
	token, err := expired.Sign(jwt.Claims{
		Subject: user.ID,
		UserID:  user.ID,
		Email:   user.Email,
	})
	if err != nil {
		t.Fatalf("helpers: failed to sign token: %v", err)
	}
	return token
}

// ============================================================================
// Router Builder
// ============================================================================

// NewTestRouter wires the full API route table over the given database.
// Tokens minted by the returned JWTHelper are accepted by the router's
// auth middleware.
func NewTestRouter(t *testing.T, db database.Database) (http.Handler, *JWTHelper) {
	t.Helper()

	jwtHelper := NewJWTHelper(t)

	userRepo := repository.NewUserRepository(db)
	speakerRepo := repository.NewSpeakerRepository(db)

	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:   userRepo,
		JWTService: jwtHelper.Service,
	})
	speakerService := service.NewSpeakerService(service.SpeakerServiceConfig{
		SpeakerRepo: speakerRepo,
	})

	authHandler := handler.NewAuthHandler(authService)
	speakerHandler := handler.NewSpeakerHandler(handler.SpeakerHandlerConfig{
		SpeakerService: speakerService,
	})
	healthHandler := handler.NewHealthHandler(db, "test")

	requireAuth := middleware.Auth(authService)
	loadSpeaker := middleware.SpeakerLoader(speakerService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthHandler.Check)
	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.Handle("GET /auth/me", middleware.Chain(http.HandlerFunc(authHandler.Me), requireAuth))
	mux.HandleFunc("GET /speakers", speakerHandler.List)
	mux.Handle("POST /speakers", middleware.Chain(http.HandlerFunc(speakerHandler.Create), requireAuth))
	mux.Handle("GET /speakers/{speakerId}", middleware.Chain(http.HandlerFunc(speakerHandler.Read), loadSpeaker))
	mux.Handle("PUT /speakers/{speakerId}", middleware.Chain(http.HandlerFunc(speakerHandler.Update), loadSpeaker, requireAuth, middleware.SpeakerOwner))
	mux.Handle("DELETE /speakers/{speakerId}", middleware.Chain(http.HandlerFunc(speakerHandler.Delete), loadSpeaker, requireAuth, middleware.SpeakerOwner))

	return middleware.Chain(mux, middleware.RequestID, middleware.Recovery), jwtHelper
}

// ============================================================================
// HTTP Request Helpers
// ============================================================================

// RequestBuilder helps construct HTTP requests for testing
type RequestBuilder struct {
	t       *testing.T
	method  string
	path    string
	body    interface{}
	headers map[string]string
	jwt     *JWTHelper
	user    *model.User
}

// NewRequest creates a new request builder
func NewRequest(t *testing.T, method, path string) *RequestBuilder {
	t.Helper()
	return &RequestBuilder{
		t:       t,
		method:  method,
		path:    path,
		headers: make(map[string]string),
	}
}

// WithBody sets the request body (will be JSON encoded)
func (rb *RequestBuilder) WithBody(body interface{}) *RequestBuilder {
	rb.body = body
	return rb
}

// WithHeader adds a header to the request
func (rb *RequestBuilder) WithHeader(key, value string) *RequestBuilder {
	rb.headers[key] = value
	return rb
}

// WithAuth adds authentication for the given user
func (rb *RequestBuilder) WithAuth(jwt *JWTHelper, user *model.User) *RequestBuilder {
	rb.jwt = jwt
	rb.user = user
	return rb
}

// Build creates the HTTP request
func (rb *RequestBuilder) Build() *http.Request {
	rb.t.Helper()

	var bodyReader io.Reader
	if rb.body != nil {
		bodyBytes, err := json.Marshal(rb.body)
		if err != nil {
			rb.t.Fatalf("helpers: failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(rb.method, rb.path, bodyReader)

	if rb.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range rb.headers {
		req.Header.Set(k, v)
	}

	if rb.jwt != nil && rb.user != nil {
		token := rb.jwt.GenerateToken(rb.t, rb.user)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}

// Do executes the request against the router and returns the recorder
func (rb *RequestBuilder) Do(router http.Handler) *httptest.ResponseRecorder {
	rb.t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, rb.Build())
	return rec
}

// ============================================================================
// Response Assertion Helpers
// ============================================================================

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, resp *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if resp.Code != expected {
		t.Errorf("expected status %d, got %d. Body: %s", expected, resp.Code, resp.Body.String())
	}
}

// AssertErrorMessage validates an error response body
func AssertErrorMessage(t *testing.T, resp *httptest.ResponseRecorder, expected string) {
	t.Helper()

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("helpers: failed to decode error body: %v", err)
	}
	if body.Message != expected {
		t.Errorf("expected message %q, got %q", expected, body.Message)
	}
}

// DecodeBody decodes a JSON response body into the given value
func DecodeBody(t *testing.T, resp *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("helpers: failed to decode body: %v", err)
	}
}

// ReadAll returns the raw response body
func ReadAll(t *testing.T, r io.Reader) []byte {
	t.Helper()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("helpers: failed to read body: %v", err)
	}
	return data
}
