// Package backend is the outgoing adapter for the estate REST API. Every
// list endpoint may answer either a bare array or a {success,data} envelope;
// both shapes are accepted interchangeably here and nowhere else.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/olgudulger/emlakfe/internal/contextkeys"
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// doRequest is the shared request helper: it attaches the trace id from the
// context and the common headers.
func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return c.httpClient.Do(req)
}

// do performs the request and returns the response body, turning any
// non-success status into an error that carries the body text.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("estate backend returned non-success status code %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// envelope is the {success,data} wrapper some endpoints use.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// decodeCollection accepts a bare JSON array, an envelope holding an array,
// or an envelope holding a single object.
func decodeCollection[T any](body []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, err
	}
	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || string(data) == "null" {
		return nil, fmt.Errorf("response carries no data field")
	}
	if data[0] == '[' {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var single T
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, err
	}
	return []T{single}, nil
}

// decodeItem accepts either a bare object or an envelope holding one.
func decodeItem[T any](body []byte) (T, error) {
	var zero T
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return zero, fmt.Errorf("empty response body")
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err == nil && len(env.Data) > 0 && string(bytes.TrimSpace(env.Data)) != "null" {
		var item T
		if err := json.Unmarshal(env.Data, &item); err != nil {
			return zero, err
		}
		return item, nil
	}

	var item T
	if err := json.Unmarshal(trimmed, &item); err != nil {
		return zero, err
	}
	return item, nil
}
