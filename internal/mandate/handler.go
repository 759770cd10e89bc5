package mandate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/payments-gateway/internal"
	"github.com/frahmantamala/payments-gateway/internal/publicauth"
	"github.com/frahmantamala/payments-gateway/internal/transport"
)

// ServiceAPI is the orchestration surface the handler depends on.
type ServiceAPI interface {
	Create(ctx context.Context, account *publicauth.Account, request CreateRequest) (*Mandate, error)
	Get(ctx context.Context, account *publicauth.Account, mandateID string) (*Mandate, error)
	SelfURL(mandateID string) string
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

// CreateMandate handles POST /v1/directdebit/mandates
func (h *Handler) CreateMandate(w http.ResponseWriter, r *http.Request) {
	account, ok := publicauth.AccountFromContext(r.Context())
	if !ok {
		h.HandleError(w, internal.OpCreateMandate, internal.UnauthorizedError())
		return
	}

	var request CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.Logger.Error("CreateMandate: unparseable request body", "error", err)
		h.HandleError(w, internal.OpCreateMandate, internal.MandateValidationError("Unable to parse JSON"))
		return
	}

	created, err := h.Service.Create(r.Context(), account, request)
	if err != nil {
		h.HandleError(w, internal.OpCreateMandate, err)
		return
	}

	h.Logger.Info("CreateMandate: mandate created", "mandate_id", created.MandateID, "account_id", account.ID)
	w.Header().Set("Location", h.Service.SelfURL(created.MandateID))
	h.WriteJSON(w, http.StatusCreated, created)
}

// GetMandate handles GET /v1/directdebit/mandates/{mandateId}
func (h *Handler) GetMandate(w http.ResponseWriter, r *http.Request) {
	account, ok := publicauth.AccountFromContext(r.Context())
	if !ok {
		h.HandleError(w, internal.OpGetMandate, internal.UnauthorizedError())
		return
	}

	mandateID := chi.URLParam(r, "mandateId")
	found, err := h.Service.Get(r.Context(), account, mandateID)
	if err != nil {
		h.HandleError(w, internal.OpGetMandate, err)
		return
	}

	h.Logger.Info("GetMandate: mandate returned", "mandate_id", mandateID, "account_id", account.ID)
	h.WriteJSON(w, http.StatusOK, found)
}
