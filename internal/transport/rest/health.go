package rest

import (
	"encoding/json"
	"net/http"

	"github.com/frahmantamala/payments-gateway/internal"
)

// HealthHandler reports gateway liveness. The gateway holds no state of its
// own, so health is configuration plus process liveness; downstream health
// belongs to the downstream services.
type HealthHandler struct {
	cfg *internal.Config
}

func NewHealthHandler(cfg *internal.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

func (h *HealthHandler) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
		"backends": map[string]string{
			"connector":   h.cfg.Connector.BaseURL,
			"ledger":      h.cfg.Ledger.BaseURL,
			"public_auth": h.cfg.PublicAuth.BaseURL,
		},
	})
}

func (h *HealthHandler) pingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"ping": "pong"})
}
