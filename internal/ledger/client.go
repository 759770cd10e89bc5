// Package ledger is the thin HTTP wrapper around the historical transaction
// service.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/frahmantamala/payments-gateway/internal/backend"
	ledgertypes "github.com/frahmantamala/payments-gateway/internal/core/datamodel/ledger"
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

// GetTransaction fetches one transaction by external id.
func (c *Client) GetTransaction(ctx context.Context, accountID, transactionID string) (*ledgertypes.Transaction, error) {
	path := fmt.Sprintf("/v1/transaction/%s?account_id=%s",
		url.PathEscape(transactionID), url.QueryEscape(accountID))

	var tx ledgertypes.Transaction
	if err := c.get(ctx, path, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// GetTransactionEvents fetches the event history of a transaction.
func (c *Client) GetTransactionEvents(ctx context.Context, accountID, transactionID string) (*ledgertypes.TransactionEvents, error) {
	path := fmt.Sprintf("/v1/transaction/%s/event?account_id=%s",
		url.PathEscape(transactionID), url.QueryEscape(accountID))

	var events ledgertypes.TransactionEvents
	if err := c.get(ctx, path, &events); err != nil {
		return nil, err
	}
	return &events, nil
}

// SearchTransactions runs a validated search against the ledger. The params
// must already be in the ledger's own query vocabulary.
func (c *Client) SearchTransactions(ctx context.Context, accountID string, params url.Values) (*ledgertypes.SearchPage, error) {
	query := url.Values{}
	for key, values := range params {
		for _, v := range values {
			query.Add(key, v)
		}
	}
	query.Set("account_id", accountID)

	var page ledgertypes.SearchPage
	if err := c.get(ctx, "/v1/transaction?"+query.Encode(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build ledger request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("ledger request failed", "path", path, "error", err)
		return &backend.DownstreamError{Source: backend.SourceLedger, Cause: err}
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &backend.DownstreamError{Source: backend.SourceLedger, Cause: err}
		}
		return nil
	case http.StatusNotFound:
		c.logger.Info("ledger reported not found", "path", path)
		return backend.ErrNotFound
	default:
		c.logger.Error("unexpected ledger response", "path", path, "status", resp.StatusCode)
		return &backend.DownstreamError{Source: backend.SourceLedger, Status: resp.StatusCode}
	}
}
