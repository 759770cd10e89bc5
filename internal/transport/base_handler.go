package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/payments-gateway/internal"
	"github.com/frahmantamala/payments-gateway/pkg/logger"
)

// BaseHandler provides common functionality for HTTP handlers.
type BaseHandler struct {
	Logger *slog.Logger
}

func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.L()
	}
	return &BaseHandler{Logger: lg}
}

// WriteJSON writes a JSON response.
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// HandleError renders an error as the public {code, description} shape.
// Anything that is not an APIError is internal detail and surfaces as a
// generic downstream fault for the given operation.
func (h *BaseHandler) HandleError(w http.ResponseWriter, op internal.Operation, err error) {
	apiErr, ok := internal.IsAPIError(err)
	if !ok {
		h.Logger.Error("unclassified error reached the transport layer", "operation", string(op), "error", err)
		apiErr = internal.DownstreamError(op)
	}
	if apiErr.Cause != nil {
		h.Logger.Error("request failed", "operation", string(op), "code", apiErr.Code, "cause", apiErr.Cause)
	}
	h.WriteJSON(w, apiErr.StatusCode, apiErr)
}

// ExtractTokenFromHeader extracts the bearer token from the Authorization
// header, returning "" when the header is missing or malformed.
func (h *BaseHandler) ExtractTokenFromHeader(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ""
	}
	return authHeader[7:]
}
