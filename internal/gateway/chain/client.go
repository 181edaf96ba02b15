package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Reader is the minimal read boundary towards a chain node. The gateway only
// ever issues view calls, never transactions.
type Reader interface {
	Call(ctx context.Context, method string, payload string) (string, error)
}

// Client talks to a node's contract view-call endpoint over HTTP.
type Client struct {
	baseURL    string
	contractID string
	httpClient *http.Client
}

// NewClient builds a read client pinned to one contract.
func NewClient(baseURL string, contractID string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		contractID: contractID,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type callRequest struct {
	ContractID string `json:"contract_id"`
	Method     string `json:"method"`
	Payload    string `json:"payload"`
}

type callResponse struct {
	Result string `json:"result"`
	Error  string `json:"error,omitempty"`
}

// Call performs a single contract view call and hands back the raw result string.
func (c *Client) Call(ctx context.Context, method string, payload string) (string, error) {
	body, err := json.Marshal(callRequest{
		ContractID: c.contractID,
		Method:     method,
		Payload:    payload,
	})
	if err != nil {
		return "", fmt.Errorf("encode call request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/contract/call", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build call request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call %s: %w", method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s response: %w", method, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("call %s: node returned %d", method, resp.StatusCode)
	}

	var parsed callResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode %s response: %w", method, err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("call %s: %s", method, parsed.Error)
	}
	return parsed.Result, nil
}
