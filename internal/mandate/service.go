package mandate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/payments-gateway/internal"
	"github.com/frahmantamala/payments-gateway/internal/backend"
	connectortypes "github.com/frahmantamala/payments-gateway/internal/core/datamodel/connector"
	paymentmodel "github.com/frahmantamala/payments-gateway/internal/core/datamodel/payment"
	"github.com/frahmantamala/payments-gateway/internal/publicauth"
)

// ConnectorAPI is the slice of the connector client mandates need. Mandates
// are a live-state concern; the ledger plays no part here.
type ConnectorAPI interface {
	CreateMandate(ctx context.Context, accountID string, request connectortypes.MandateRequest) (*connectortypes.Mandate, error)
	GetMandate(ctx context.Context, accountID, mandateID string) (*connectortypes.Mandate, error)
}

type Service struct {
	connector ConnectorAPI
	baseURL   string
	logger    *slog.Logger
}

func NewService(connector ConnectorAPI, baseURL string, logger *slog.Logger) *Service {
	return &Service{
		connector: connector,
		baseURL:   baseURL,
		logger:    logger,
	}
}

// Create validates the request and sets up a mandate through the connector.
func (s *Service) Create(ctx context.Context, account *publicauth.Account, request CreateRequest) (*Mandate, error) {
	if apiErr := request.Validate(); apiErr != nil {
		return nil, apiErr
	}

	created, err := s.connector.CreateMandate(ctx, account.ID, connectortypes.MandateRequest{
		ReturnURL:        request.ReturnURL,
		ServiceReference: request.Reference,
		Description:      request.Description,
	})
	if err != nil {
		s.logger.Error("mandate creation failed", "account_id", account.ID, "error", err)
		return nil, internal.DownstreamError(internal.OpCreateMandate).WithCause(err)
	}

	s.logger.Info("mandate created", "mandate_id", created.MandateID, "account_id", account.ID)
	return s.mapMandate(created), nil
}

// Get fetches one mandate.
func (s *Service) Get(ctx context.Context, account *publicauth.Account, mandateID string) (*Mandate, error) {
	found, err := s.connector.GetMandate(ctx, account.ID, mandateID)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, internal.NotFoundError(internal.OpGetMandate).WithCause(err)
		}
		s.logger.Error("mandate lookup failed", "mandate_id", mandateID, "error", err)
		return nil, internal.DownstreamError(internal.OpGetMandate).WithCause(err)
	}
	return s.mapMandate(found), nil
}

// SelfURL is the public location of a mandate resource.
func (s *Service) SelfURL(mandateID string) string {
	return fmt.Sprintf("%s/v1/directdebit/mandates/%s", s.baseURL, mandateID)
}

func (s *Service) mapMandate(in *connectortypes.Mandate) *Mandate {
	mapped := &Mandate{
		MandateID:       in.MandateID,
		ProviderID:      in.MandateReference,
		Reference:       in.ServiceReference,
		ReturnURL:       in.ReturnURL,
		PaymentProvider: in.PaymentProvider,
		CreatedDate:     in.CreatedDate,
		Description:     in.Description,
		State: State{
			Status:   in.State.Status,
			Finished: in.State.Finished,
			Details:  in.State.Details,
		},
		Links: Links{
			Self: &paymentmodel.Link{Href: s.SelfURL(in.MandateID), Method: http.MethodGet},
			Payments: &paymentmodel.Link{
				Href:   fmt.Sprintf("%s/v1/payments?agreement_id=%s", s.baseURL, in.MandateID),
				Method: http.MethodGet,
			},
		},
	}
	if next := connectortypes.FindLink(in.Links, "next_url"); next != nil {
		mapped.Links.NextURL = &paymentmodel.Link{Href: next.Href, Method: next.Method}
	}
	if nextPost := connectortypes.FindLink(in.Links, "next_url_post"); nextPost != nil {
		mapped.Links.NextURLPost = &paymentmodel.PostLink{
			Href:   nextPost.Href,
			Method: nextPost.Method,
			Type:   nextPost.Type,
			Params: nextPost.Params,
		}
	}
	return mapped
}
