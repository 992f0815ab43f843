package kiosk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the check-in API client used by kiosks and member apps.
type Client struct {
	baseURL    string
	token      string
	terminalID string
	httpClient *http.Client
}

// Option is a function that configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = d
	}
}

// WithToken sets the bearer token used for authenticated endpoints.
// Validation does not need it; credential minting does.
func WithToken(token string) Option {
	return func(client *Client) {
		client.token = token
	}
}

// WithTerminalID sets the terminal identifier sent with every
// validation call (e.g. "trm_xxx").
func WithTerminalID(id string) Option {
	return func(client *Client) {
		client.terminalID = id
	}
}

// NewClient creates a new check-in API client.
//
// Parameters:
//   - baseURL: The API base URL (e.g., "https://api.example.com")
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Validate submits one scanned credential for admission.
func (c *Client) Validate(ctx context.Context, credential string) (*ValidationResult, error) {
	url := fmt.Sprintf("%s/checkin/validate", c.baseURL)

	body := map[string]string{
		"credential": credential,
	}
	if c.terminalID != "" {
		body["terminal_id"] = c.terminalID
	}

	var result ValidationResult
	if err := c.doRequest(ctx, http.MethodPost, url, body, &result); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return &result, nil
}

// IssueCredential mints a fresh check-in credential for the
// authenticated caller's member.
func (c *Client) IssueCredential(ctx context.Context) (*CredentialGrant, error) {
	url := fmt.Sprintf("%s/checkin/credentials", c.baseURL)

	var grant CredentialGrant
	if err := c.doRequest(ctx, http.MethodPost, url, nil, &grant); err != nil {
		return nil, fmt.Errorf("issue credential: %w", err)
	}
	return &grant, nil
}

// doRequest performs an HTTP request and decodes the enveloped response.
func (c *Client) doRequest(ctx context.Context, method, url string, body any, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return fmt.Errorf("unmarshal response: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	if !apiResp.Success {
		if apiResp.Error != nil {
			return fmt.Errorf("api error: %s", apiResp.Error.Message)
		}
		return fmt.Errorf("api error: status=%d", resp.StatusCode)
	}

	if result == nil || apiResp.Data == nil {
		return nil
	}

	// Re-marshal and unmarshal to convert Data to the target type
	dataBytes, err := json.Marshal(apiResp.Data)
	if err != nil {
		return fmt.Errorf("marshal data: %w", err)
	}

	if err := json.Unmarshal(dataBytes, result); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}

	return nil
}
