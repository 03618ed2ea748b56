package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to a text-generation inference server (TGI-compatible wire
// format: POST /generate with inputs + parameters).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the inference server at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Ping probes the server's health endpoint. Used at startup to decide
// whether the model backend is usable at all.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach inference server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("inference server unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

// Generate requests a continuation of prompt. Parameters are passed through
// to the server untouched so callers control the merge of defaults and
// overrides.
func (c *Client) Generate(ctx context.Context, prompt string, parameters map[string]any) (string, error) {
	body, err := json.Marshal(GenerateRequest{Inputs: prompt, Parameters: parameters})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call inference server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("inference server error %d: %s", resp.StatusCode, string(raw))
	}

	var result GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode inference response: %w", err)
	}

	return result.GeneratedText, nil
}
