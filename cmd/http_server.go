package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"

	"github.com/frahmantamala/payments-gateway/internal"
	"github.com/frahmantamala/payments-gateway/internal/connector"
	"github.com/frahmantamala/payments-gateway/internal/ledger"
	"github.com/frahmantamala/payments-gateway/internal/mandate"
	"github.com/frahmantamala/payments-gateway/internal/payment"
	"github.com/frahmantamala/payments-gateway/internal/publicauth"
	"github.com/frahmantamala/payments-gateway/internal/transport/rest"
	"github.com/frahmantamala/payments-gateway/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	cfg, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)
	lg := logger.L()

	authClient := publicauth.NewClient(cfg.PublicAuth.BaseURL, cfg.PublicAuth.Timeout, lg)
	connectorClient := connector.NewClient(cfg.Connector.BaseURL, cfg.Connector.Timeout, lg)
	ledgerClient := ledger.NewClient(cfg.Ledger.BaseURL, cfg.Ledger.Timeout, lg)

	paymentService := payment.NewService(connectorClient, ledgerClient, cfg.Server.BaseURL, lg)
	paymentHandler := payment.NewHandler(paymentService, lg)

	mandateService := mandate.NewService(connectorClient, cfg.Server.BaseURL, lg)
	mandateHandler := mandate.NewHandler(mandateService, lg)

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, cfg, authClient, paymentHandler, mandateHandler, lg)

	return &Dependencies{
		Config: cfg,
		Router: router,
		Logger: lg,
	}, nil
}
