// Package anthropic calls the Anthropic Messages API to turn web
// searches and raw scraped listings into structured candidate events.
// The pipeline core never depends on it directly; it sees only the
// CandidateSource interface.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/freeil-scanner/internal/config"
)

const apiVersion = "2023-06-01"

// Client is a thin Messages API client.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	model          string
	maxTokens      int
	maxWebSearches int
	logger         *zap.Logger
}

// NewClient creates a new Anthropic API client.
func NewClient(cfg *config.AnthropicConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:         cfg.APIKey,
		model:          cfg.Model,
		maxTokens:      cfg.MaxTokens,
		maxWebSearches: cfg.MaxWebSearches,
		logger:         logger,
	}
}

// Available reports whether the client has a credential. Without one the
// scan sources report themselves unavailable instead of failing the run.
func (c *Client) Available() bool {
	return c.apiKey != ""
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Tools     []tool    `json:"tools,omitempty"`
	Messages  []message `json:"messages"`
}

type tool struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	MaxUses int    `json:"max_uses,omitempty"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// complete sends one Messages request and returns the concatenated text
// blocks of the response. Web-search responses interleave tool blocks
// with text; only the text carries the event JSON.
func (c *Client) complete(ctx context.Context, reqBody messagesRequest) (string, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := c.baseURL + "/v1/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Anthropic-Version", apiVersion)

	c.logger.Debug("Calling Anthropic Messages API",
		zap.String("model", reqBody.Model),
		zap.Int("max_tokens", reqBody.MaxTokens),
		zap.Bool("web_search", len(reqBody.Tools) > 0))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Anthropic API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return "", fmt.Errorf("anthropic API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var msgResp messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&msgResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	var parts []string
	for _, block := range msgResp.Content {
		if block.Type == "text" && block.Text != "" {
			parts = append(parts, block.Text)
		}
	}

	c.logger.Debug("Anthropic Messages API call successful",
		zap.Duration("duration", time.Since(start)),
		zap.Int("text_blocks", len(parts)))

	return strings.TrimSpace(strings.Join(parts, "\n")), nil
}
