package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"florabot/internal/models"
)

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// apiClient is a thin wrapper over the florabot admin HTTP API.
type apiClient struct {
	baseURL string
	token   string
	client  *http.Client
}

func newAPIClient(opts *RootOptions) *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(opts.Addr, "/"),
		token:   opts.Token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// errSilent marks the server's empty non-admin response: nothing to print,
// nothing to complain about.
var errSilent = fmt.Errorf("no response")

func (c *apiClient) recentOrders(ctx context.Context, limit int) ([]models.Order, error) {
	url := fmt.Sprintf("%s/api/admin/orders?limit=%d", c.baseURL, limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	var orders []models.Order
	if err := c.do(req, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *apiClient) setStatus(ctx context.Context, orderID, status string) (*models.Order, error) {
	body, err := json.Marshal(struct {
		Status string `json:"status"`
	}{Status: status})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/api/admin/orders/%s/status", c.baseURL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var order models.Order
	if err := c.do(req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *apiClient) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	case http.StatusNoContent:
		return errSilent
	default:
		data, _ := io.ReadAll(resp.Body)
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}
}
