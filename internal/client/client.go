// Package client calls a deployed generation endpoint over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/pageza/larder/backend/internal/types"
)

// GenerationPath is the generation endpoint relative to the base URL.
const GenerationPath = "/api/v1/generate-recipes"

// APIError is a failure answered with an error payload.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client is an HTTP client for the generation endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a client for the service at baseURL. apiKey, when set, is sent
// as a bearer token and an apikey header.
func New(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// Generate posts req and returns the success payload. Error payloads are
// returned as *APIError; anything else is a plain error.
func (c *Client) Generate(ctx context.Context, req types.GenerationRequest) (*types.GenerationResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+GenerationPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
		httpReq.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		types.GenerationResponse
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}

	if payload.Error != "" {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
	}
	if resp.StatusCode != http.StatusOK || !payload.Success {
		return nil, fmt.Errorf("unexpected response status %d", resp.StatusCode)
	}

	return &payload.GenerationResponse, nil
}

// IsAPIError reports whether err is an error payload from the endpoint.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
