package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// envelope mirrors the API's JSON wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

// APIError is a response whose envelope reported failure.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

// Client talks to a running hdate API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Do sends a request with an optional JSON body and returns the status
// and raw response body.
func (c *Client) Do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("encode body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read %s %s: %w", method, path, err)
	}
	return resp.StatusCode, raw, nil
}

// Call sends a request and decodes the envelope's data into out, which
// may be nil. A failed envelope is returned as *APIError.
func (c *Client) Call(ctx context.Context, method, path string, body, out any) (int, error) {
	status, raw, err := c.Do(ctx, method, path, body)
	if err != nil {
		return status, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return status, fmt.Errorf("decode %s %s (status %d): %w", method, path, status, err)
	}
	if !env.Success {
		apiErr := &APIError{Status: status, Message: "unknown error"}
		if env.Error != nil {
			apiErr.Code, apiErr.Message = env.Error.Code, env.Error.Message
		}
		return status, apiErr
	}
	if out == nil {
		return status, nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return status, fmt.Errorf("decode data of %s %s: %w", method, path, err)
	}
	return status, nil
}

// Get is Call for GET requests.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	_, err := c.Call(ctx, http.MethodGet, path, nil, out)
	return err
}
