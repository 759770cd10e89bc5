package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/frahmantamala/payments-gateway/internal"
	"github.com/frahmantamala/payments-gateway/internal/publicauth"
)

// Authenticator is the slice of the public-auth client this middleware uses.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*publicauth.Account, error)
}

// BearerAuth resolves the Authorization header to an account before any
// resolver or validator logic runs. A rejected token never reaches a
// downstream service.
func BearerAuth(auth Authenticator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)

			account, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				if errors.Is(err, publicauth.ErrUnauthorized) {
					writeAPIError(w, internal.UnauthorizedError())
					return
				}
				logger.Error("auth service failure", "error", err)
				writeAPIError(w, internal.AuthServiceError())
				return
			}

			ctx := publicauth.ContextWithAccount(r.Context(), account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func writeAPIError(w http.ResponseWriter, apiErr *internal.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.StatusCode)
	json.NewEncoder(w).Encode(apiErr)
}
