package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/frahmantamala/payments-gateway/internal"
	"github.com/frahmantamala/payments-gateway/internal/mandate"
	"github.com/frahmantamala/payments-gateway/internal/payment"
	"github.com/frahmantamala/payments-gateway/internal/transport/middleware"
	"github.com/frahmantamala/payments-gateway/internal/transport/swagger"
)

// RegisterAllRoutes wires the public API surface. Everything under /v1
// requires a bearer token resolved through the public-auth collaborator.
func RegisterAllRoutes(router *chi.Mux, cfg *internal.Config, auth middleware.Authenticator, paymentHandler *payment.Handler, mandateHandler *mandate.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(cfg)

	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Metrics(routePattern))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	if cfg.Observability.Metrics.Enabled {
		router.Handle(cfg.Observability.Metrics.Path, promhttp.Handler())
	}

	router.Get("/healthcheck", healthHandler.healthCheckHandler)
	router.Get("/ping", healthHandler.pingHandler)

	router.Route("/v1", func(r chi.Router) {
		r.Use(middleware.BearerAuth(auth, logger))

		r.Route("/payments", func(pr chi.Router) {
			pr.Get("/", paymentHandler.SearchPayments)
			pr.Get("/{paymentId}", paymentHandler.GetPayment)
			pr.Get("/{paymentId}/events", paymentHandler.GetPaymentEvents)
		})

		r.Route("/directdebit/mandates", func(mr chi.Router) {
			mr.Post("/", mandateHandler.CreateMandate)
			mr.Get("/{mandateId}", mandateHandler.GetMandate)
		})
	})
}

// routePattern resolves the chi route pattern after routing so metrics keep
// a bounded label set.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
