package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/cers/internal/api"
	"github.com/MikeSquared-Agency/cers/internal/config"
	"github.com/MikeSquared-Agency/cers/internal/hermes"
	"github.com/MikeSquared-Agency/cers/internal/scoring"
)

func newServeCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and metrics servers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, engine, logger, err := o.load(os.Stdout)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			return serve(cmd.Context(), cfg, engine, logger)
		},
	}
}

func serve(parent context.Context, cfg *config.Config, engine *scoring.Engine, logger *slog.Logger) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// Hermes (optional)
	var hermesClient hermes.Client = hermes.NopClient{}
	if cfg.Hermes.URL != "" {
		hc, err := hermes.NewNATSClient(ctx, cfg.Hermes.URL, logger)
		if err != nil {
			logger.Warn("failed to connect to hermes, running without events", "error", err)
		} else {
			hermesClient = hc
			defer hc.Close()
			logger.Info("connected to hermes")
		}
	}

	ranked := engine.Ranked()
	summary := scoring.Summarize(ranked)
	loaded := hermes.CatalogLoadedEvent{
		Regions:   summary.Total,
		High:      summary.High,
		Moderate:  summary.Moderate,
		Low:       summary.Low,
		Timestamp: time.Now().UTC(),
	}
	if len(ranked) > 0 {
		loaded.Top = ranked[0].Name
	}
	if err := hermesClient.Publish(hermes.SubjectCatalogLoaded, loaded); err != nil {
		logger.Warn("failed to publish catalog event", "error", err)
	}
	logger.Info("regions ranked", "regions", summary.Total, "high", summary.High, "moderate", summary.Moderate, "low", summary.Low)

	// API server
	apiServer := &http.Server{
		Addr:              cfg.APIAddr(),
		Handler:           api.NewRouter(engine, hermesClient, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Metrics server
	metricsServer := &http.Server{
		Addr:              cfg.MetricsAddr(),
		Handler:           api.NewMetricsRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)

	go func() {
		logger.Info("API server starting", "port", cfg.Server.Port)
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			errCh <- fmt.Errorf("api server: %w", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			errCh <- fmt.Errorf("metrics server: %w", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var serveErr error
	select {
	case <-sigCh:
	case <-ctx.Done():
	case serveErr = <-errCh:
		logger.Error("server failed", "error", serveErr)
	}

	logger.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
	return serveErr
}
