package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/frahmantamala/payments-gateway/internal"
	"github.com/frahmantamala/payments-gateway/internal/backend"
	connectortypes "github.com/frahmantamala/payments-gateway/internal/core/datamodel/connector"
	ledgertypes "github.com/frahmantamala/payments-gateway/internal/core/datamodel/ledger"
	paymentmodel "github.com/frahmantamala/payments-gateway/internal/core/datamodel/payment"
	"github.com/frahmantamala/payments-gateway/internal/publicauth"
)

// ConnectorAPI is the slice of the connector client this service needs.
type ConnectorAPI interface {
	GetCharge(ctx context.Context, accountID, chargeID string) (*connectortypes.Charge, error)
	GetChargeEvents(ctx context.Context, accountID, chargeID string) (*connectortypes.ChargeEvents, error)
}

// LedgerAPI is the slice of the ledger client this service needs.
type LedgerAPI interface {
	GetTransaction(ctx context.Context, accountID, transactionID string) (*ledgertypes.Transaction, error)
	GetTransactionEvents(ctx context.Context, accountID, transactionID string) (*ledgertypes.TransactionEvents, error)
	SearchTransactions(ctx context.Context, accountID string, params url.Values) (*ledgertypes.SearchPage, error)
}

type Service struct {
	connector ConnectorAPI
	ledger    LedgerAPI
	baseURL   string
	logger    *slog.Logger
}

func NewService(connector ConnectorAPI, ledger LedgerAPI, baseURL string, logger *slog.Logger) *Service {
	return &Service{
		connector: connector,
		ledger:    ledger,
		baseURL:   baseURL,
		logger:    logger,
	}
}

// GetPayment resolves the backend plan for the request's strategy hint and
// returns the canonical payment. With the default plan a confirmed
// not-found from the connector falls back to the ledger; any other
// connector failure is terminal.
func (s *Service) GetPayment(ctx context.Context, account *publicauth.Account, paymentID, strategy string) (*paymentmodel.Payment, error) {
	plan := s.plan(strategy)

	var lastErr error
	for _, source := range plan {
		var (
			mapped *paymentmodel.Payment
			err    error
		)
		switch source {
		case backend.SourceConnector:
			var charge *connectortypes.Charge
			if charge, err = s.connector.GetCharge(ctx, account.ID, paymentID); err == nil {
				mapped = FromConnectorCharge(s.baseURL, charge)
			}
		case backend.SourceLedger:
			var tx *ledgertypes.Transaction
			if tx, err = s.ledger.GetTransaction(ctx, account.ID, paymentID); err == nil {
				mapped = FromLedgerTransaction(s.baseURL, tx)
			}
		}

		if err == nil {
			return mapped, nil
		}
		if !errors.Is(err, backend.ErrNotFound) {
			s.logger.Error("payment lookup failed", "source", source.String(), "payment_id", paymentID, "error", err)
			return nil, internal.DownstreamError(internal.OpGetPayment).WithCause(err)
		}
		lastErr = err
	}

	s.logger.Info("payment not found on any resolved source", "payment_id", paymentID)
	return nil, internal.NotFoundError(internal.OpGetPayment).WithCause(lastErr)
}

// GetPaymentEvents follows the same resolution semantics as GetPayment.
func (s *Service) GetPaymentEvents(ctx context.Context, account *publicauth.Account, paymentID, strategy string) (*paymentmodel.Events, error) {
	plan := s.plan(strategy)

	var lastErr error
	for _, source := range plan {
		var (
			mapped *paymentmodel.Events
			err    error
		)
		switch source {
		case backend.SourceConnector:
			var events *connectortypes.ChargeEvents
			if events, err = s.connector.GetChargeEvents(ctx, account.ID, paymentID); err == nil {
				mapped = EventsFromConnector(s.baseURL, events)
			}
		case backend.SourceLedger:
			var events *ledgertypes.TransactionEvents
			if events, err = s.ledger.GetTransactionEvents(ctx, account.ID, paymentID); err == nil {
				mapped = EventsFromLedger(s.baseURL, events)
			}
		}

		if err == nil {
			return mapped, nil
		}
		if !errors.Is(err, backend.ErrNotFound) {
			s.logger.Error("payment events lookup failed", "source", source.String(), "payment_id", paymentID, "error", err)
			return nil, internal.DownstreamError(internal.OpGetPaymentEvents).WithCause(err)
		}
		lastErr = err
	}

	s.logger.Info("payment events not found on any resolved source", "payment_id", paymentID)
	return nil, internal.NotFoundError(internal.OpGetPaymentEvents).WithCause(lastErr)
}

// SearchPayments validates the criteria and queries the ledger, the system
// of record for historical transactions. Validation failures surface before
// any downstream call.
func (s *Service) SearchPayments(ctx context.Context, account *publicauth.Account, criteria SearchCriteria) (*SearchResults, error) {
	if apiErr := ValidateSearchCriteria(account, criteria); apiErr != nil {
		return nil, apiErr
	}

	page, err := s.ledger.SearchTransactions(ctx, account.ID, criteria.toLedgerQuery())
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, internal.NotFoundError(internal.OpSearchPayments).WithCause(err)
		}
		s.logger.Error("payment search failed", "account_id", account.ID, "error", err)
		return nil, internal.DownstreamError(internal.OpSearchPayments).WithCause(err)
	}

	results := make([]paymentmodel.Payment, 0, len(page.Results))
	for i := range page.Results {
		results = append(results, *FromLedgerTransaction(s.baseURL, &page.Results[i]))
	}

	return &SearchResults{
		Total:   page.Total,
		Count:   page.Count,
		Page:    page.Page,
		Results: results,
		Links:   s.searchLinks(criteria, page),
	}, nil
}

// searchLinks rebuilds pagination links against the public base URL; ledger
// hrefs must never leak to consumers.
func (s *Service) searchLinks(criteria SearchCriteria, page *ledgertypes.SearchPage) SearchLinks {
	current := criteria.pageNumber()
	size := criteria.pageSize()
	lastPage := (page.Total + size - 1) / size
	if lastPage < 1 {
		lastPage = 1
	}

	links := SearchLinks{
		Self:      s.searchPageLink(criteria, current),
		FirstPage: s.searchPageLink(criteria, 1),
		LastPage:  s.searchPageLink(criteria, lastPage),
	}
	if current > 1 {
		links.PrevPage = s.searchPageLink(criteria, current-1)
	}
	if current < lastPage {
		links.NextPage = s.searchPageLink(criteria, current+1)
	}
	return links
}

func (s *Service) searchPageLink(criteria SearchCriteria, page int) *paymentmodel.Link {
	query := criteria.toLedgerQuery()
	query.Set("page", strconv.Itoa(page))
	return &paymentmodel.Link{
		Href:   fmt.Sprintf("%s/v1/payments?%s", s.baseURL, query.Encode()),
		Method: http.MethodGet,
	}
}

// plan resolves the strategy hint, logging hints this gateway does not
// understand before falling back to the default plan.
func (s *Service) plan(strategy string) []backend.Source {
	if !backend.KnownStrategy(strategy) {
		s.logger.Warn("unknown backend strategy, using default plan", "strategy", strategy)
	}
	return backend.Resolve(strategy)
}
