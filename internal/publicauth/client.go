// Package publicauth consumes the token authentication collaborator. The
// gateway never inspects bearer tokens itself; it forwards them and gets back
// the account they belong to.
package publicauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// PaymentType classifies an account, which in turn selects the external
// state vocabulary its searches validate against.
type PaymentType string

const (
	PaymentTypeCard        PaymentType = "CARD"
	PaymentTypeDirectDebit PaymentType = "DIRECT_DEBIT"
)

// Account is the authenticated caller of a request.
type Account struct {
	ID          string
	PaymentType PaymentType
}

// ErrUnauthorized means the auth service rejected the presented token.
var ErrUnauthorized = errors.New("token rejected by auth service")

type authResponse struct {
	AccountID string `json:"account_id"`
	TokenType string `json:"token_type"`
}

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

// Authenticate resolves a bearer token to an account. Any response other
// than 200 or 401 is reported as an error distinct from ErrUnauthorized so
// callers do not mistake an auth service outage for a bad token.
func (c *Client) Authenticate(ctx context.Context, token string) (*Account, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	url := fmt.Sprintf("%s/v1/auth", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build auth request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("auth service unreachable", "error", err)
		return nil, fmt.Errorf("auth request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var payload authResponse
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return nil, fmt.Errorf("decode auth response: %w", err)
		}
		paymentType := PaymentType(payload.TokenType)
		if paymentType == "" {
			paymentType = PaymentTypeCard
		}
		return &Account{ID: payload.AccountID, PaymentType: paymentType}, nil
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		c.logger.Error("unexpected auth service response", "status", resp.StatusCode)
		return nil, fmt.Errorf("auth service responded with status %d", resp.StatusCode)
	}
}
