// Package connector is the thin HTTP wrapper around the live charge service.
// It performs no mapping; it decodes wire shapes and classifies outcomes.
package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/frahmantamala/payments-gateway/internal/backend"
	connectortypes "github.com/frahmantamala/payments-gateway/internal/core/datamodel/connector"
)

type Client struct {
	client  *http.Client
	baseURL string
	logger  *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		logger:  logger,
	}
}

// GetCharge fetches a single charge scoped to the calling account.
func (c *Client) GetCharge(ctx context.Context, accountID, chargeID string) (*connectortypes.Charge, error) {
	path := fmt.Sprintf("/v1/api/accounts/%s/charges/%s", url.PathEscape(accountID), url.PathEscape(chargeID))

	var charge connectortypes.Charge
	if err := c.get(ctx, path, &charge); err != nil {
		return nil, err
	}
	return &charge, nil
}

// GetChargeEvents fetches the event history of a charge.
func (c *Client) GetChargeEvents(ctx context.Context, accountID, chargeID string) (*connectortypes.ChargeEvents, error) {
	path := fmt.Sprintf("/v1/api/accounts/%s/charges/%s/events", url.PathEscape(accountID), url.PathEscape(chargeID))

	var events connectortypes.ChargeEvents
	if err := c.get(ctx, path, &events); err != nil {
		return nil, err
	}
	return &events, nil
}

// CreateMandate asks the connector to set up a direct debit mandate.
func (c *Client) CreateMandate(ctx context.Context, accountID string, request connectortypes.MandateRequest) (*connectortypes.Mandate, error) {
	path := fmt.Sprintf("/v1/api/accounts/%s/mandates", url.PathEscape(accountID))

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("marshal mandate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build mandate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("connector request failed", "path", path, "error", err)
		return nil, &backend.DownstreamError{Source: backend.SourceConnector, Cause: err}
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusCreated {
		return nil, c.classify(resp.StatusCode, path)
	}

	var mandate connectortypes.Mandate
	if err := json.NewDecoder(resp.Body).Decode(&mandate); err != nil {
		return nil, &backend.DownstreamError{Source: backend.SourceConnector, Cause: err}
	}
	return &mandate, nil
}

// GetMandate fetches a single mandate scoped to the calling account.
func (c *Client) GetMandate(ctx context.Context, accountID, mandateID string) (*connectortypes.Mandate, error) {
	path := fmt.Sprintf("/v1/api/accounts/%s/mandates/%s", url.PathEscape(accountID), url.PathEscape(mandateID))

	var mandate connectortypes.Mandate
	if err := c.get(ctx, path, &mandate); err != nil {
		return nil, err
	}
	return &mandate, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build connector request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("connector request failed", "path", path, "error", err)
		return &backend.DownstreamError{Source: backend.SourceConnector, Cause: err}
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return c.classify(resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &backend.DownstreamError{Source: backend.SourceConnector, Cause: err}
	}
	return nil
}

// classify translates a non-success status into the backend outcome
// taxonomy. The response body is intentionally not surfaced.
func (c *Client) classify(status int, path string) error {
	if status == http.StatusNotFound {
		c.logger.Info("connector reported not found", "path", path)
		return backend.ErrNotFound
	}
	c.logger.Error("unexpected connector response", "path", path, "status", status)
	return &backend.DownstreamError{Source: backend.SourceConnector, Status: status}
}

func drainAndClose(body io.ReadCloser) {
	io.Copy(io.Discard, body)
	body.Close()
}
