package payment

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/payments-gateway/internal"
	paymentmodel "github.com/frahmantamala/payments-gateway/internal/core/datamodel/payment"
	"github.com/frahmantamala/payments-gateway/internal/publicauth"
	"github.com/frahmantamala/payments-gateway/internal/transport"
)

// strategyHeader carries the per-request backend strategy hint.
const strategyHeader = "X-Ledger"

// ServiceAPI is the orchestration surface the handler depends on.
type ServiceAPI interface {
	GetPayment(ctx context.Context, account *publicauth.Account, paymentID, strategy string) (*paymentmodel.Payment, error)
	GetPaymentEvents(ctx context.Context, account *publicauth.Account, paymentID, strategy string) (*paymentmodel.Events, error)
	SearchPayments(ctx context.Context, account *publicauth.Account, criteria SearchCriteria) (*SearchResults, error)
}

type Handler struct {
	transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI, logger *slog.Logger) *Handler {
	return &Handler{
		BaseHandler: *transport.NewBaseHandler(logger),
		Service:     service,
	}
}

// GetPayment handles GET /v1/payments/{paymentId}
func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	account, ok := publicauth.AccountFromContext(r.Context())
	if !ok {
		h.HandleError(w, internal.OpGetPayment, internal.UnauthorizedError())
		return
	}

	paymentID := chi.URLParam(r, "paymentId")
	mapped, err := h.Service.GetPayment(r.Context(), account, paymentID, r.Header.Get(strategyHeader))
	if err != nil {
		h.HandleError(w, internal.OpGetPayment, err)
		return
	}

	h.Logger.Info("payment returned", "payment_id", paymentID, "account_id", account.ID)
	h.WriteJSON(w, http.StatusOK, mapped)
}

// GetPaymentEvents handles GET /v1/payments/{paymentId}/events
func (h *Handler) GetPaymentEvents(w http.ResponseWriter, r *http.Request) {
	account, ok := publicauth.AccountFromContext(r.Context())
	if !ok {
		h.HandleError(w, internal.OpGetPaymentEvents, internal.UnauthorizedError())
		return
	}

	paymentID := chi.URLParam(r, "paymentId")
	events, err := h.Service.GetPaymentEvents(r.Context(), account, paymentID, r.Header.Get(strategyHeader))
	if err != nil {
		h.HandleError(w, internal.OpGetPaymentEvents, err)
		return
	}

	h.Logger.Info("payment events returned", "payment_id", paymentID, "count", len(events.Events))
	h.WriteJSON(w, http.StatusOK, events)
}

// SearchPayments handles GET /v1/payments
func (h *Handler) SearchPayments(w http.ResponseWriter, r *http.Request) {
	account, ok := publicauth.AccountFromContext(r.Context())
	if !ok {
		h.HandleError(w, internal.OpSearchPayments, internal.UnauthorizedError())
		return
	}

	criteria := SearchCriteriaFromQuery(r.URL.Query())
	results, err := h.Service.SearchPayments(r.Context(), account, criteria)
	if err != nil {
		h.HandleError(w, internal.OpSearchPayments, err)
		return
	}

	h.Logger.Info("payment search returned", "account_id", account.ID, "count", results.Count)
	h.WriteJSON(w, http.StatusOK, results)
}
