// Package client provides a typed Go client for the Podium API.
//
// The Speakers resource mirrors the server's route table: Query lists
// all speakers, Get fetches one by ID, Save creates a new speaker, and
// Update and Remove operate on an existing record. Mutating calls
// require a bearer token set with SetToken.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	clientTimeout         = 30 * time.Second
	dialTimeout           = 10 * time.Second
	tlsHandshakeTimeout   = 10 * time.Second
	responseHeaderTimeout = 15 * time.Second
)

// Speaker is the wire representation of a speaker record.
type Speaker struct {
	ID        string     `json:"id,omitempty"`
	Name      string     `json:"name"`
	Owner     *Owner     `json:"owner,omitempty"`
	CreatedOn *time.Time `json:"created_on,omitempty"`
}

// Owner identifies the user who created a speaker.
type Owner struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// APIError is returned when the server responds with an error body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// Client talks to a Podium API server.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client

	// Speakers provides access to the speaker directory.
	Speakers *SpeakersResource
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// New creates a client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: clientTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   dialTimeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   tlsHandshakeTimeout,
				ResponseHeaderTimeout: responseHeaderTimeout,
				MaxIdleConns:          100,
				MaxIdleConnsPerHost:   10,
				IdleConnTimeout:       90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Speakers = &SpeakersResource{client: c}
	return c
}

// SetToken replaces the bearer token used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

// SpeakersResource exposes the speaker directory endpoints.
type SpeakersResource struct {
	client *Client
}

// Query lists all speakers, newest first.
func (r *SpeakersResource) Query(ctx context.Context) ([]Speaker, error) {
	var speakers []Speaker
	if err := r.client.do(ctx, http.MethodGet, "/speakers", nil, &speakers); err != nil {
		return nil, err
	}
	return speakers, nil
}

// Get fetches a single speaker by ID.
func (r *SpeakersResource) Get(ctx context.Context, id string) (*Speaker, error) {
	var speaker Speaker
	if err := r.client.do(ctx, http.MethodGet, "/speakers/"+id, nil, &speaker); err != nil {
		return nil, err
	}
	return &speaker, nil
}

// Save creates a new speaker owned by the authenticated user.
func (r *SpeakersResource) Save(ctx context.Context, speaker *Speaker) (*Speaker, error) {
	var created Speaker
	if err := r.client.do(ctx, http.MethodPost, "/speakers", speaker, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update overlays the speaker's fields onto the stored record.
func (r *SpeakersResource) Update(ctx context.Context, speaker *Speaker) (*Speaker, error) {
	if speaker.ID == "" {
		return nil, fmt.Errorf("speaker ID is required for update")
	}
	var updated Speaker
	if err := r.client.do(ctx, http.MethodPut, "/speakers/"+speaker.ID, speaker, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Remove deletes a speaker and returns its last known representation.
func (r *SpeakersResource) Remove(ctx context.Context, id string) (*Speaker, error) {
	var deleted Speaker
	if err := r.client.do(ctx, http.MethodDelete, "/speakers/"+id, nil, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}
