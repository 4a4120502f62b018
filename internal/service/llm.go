package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pageza/larder/backend/config"
	"github.com/pageza/larder/backend/internal/logger"
	"github.com/pageza/larder/backend/internal/metrics"
	"go.uber.org/zap"
)

var (
	// ErrMissingAPIKey is returned when no gateway API key was configured.
	ErrMissingAPIKey = errors.New("LOVABLE_API_KEY is not configured")
	// ErrNoChoices is returned when the gateway answered without a completion.
	ErrNoChoices = errors.New("no response from AI Gateway")
)

// maxErrorBody caps how much of a failed upstream response is kept for logs.
const maxErrorBody = 4 << 10

// UpstreamError is returned for any non-2xx answer from the chat gateway.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("AI Gateway error: %d", e.StatusCode)
}

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the chat completions endpoint.
type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ChatClient talks to an OpenAI-compatible chat completions gateway.
type ChatClient struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
}

// NewChatClient builds a client from the gateway configuration. A missing API
// key is not an error here; it is reported on the first call.
func NewChatClient(cfg config.GatewayConfig) *ChatClient {
	return &ChatClient{
		apiKey:     cfg.APIKey,
		apiURL:     cfg.URL,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// WithHTTPClient replaces the HTTP client used for gateway calls.
func (c *ChatClient) WithHTTPClient(hc *http.Client) *ChatClient {
	c.httpClient = hc
	return c
}

// CompleteChat sends messages in a single request and returns the content of
// the first choice. There is no retry.
func (c *ChatClient) CompleteChat(ctx context.Context, messages []Message) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	jsonData, err := json.Marshal(ChatRequest{Model: c.model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.GatewayDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		logger.Error("AI Gateway error",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)))
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", ErrNoChoices
	}

	return result.Choices[0].Message.Content, nil
}
