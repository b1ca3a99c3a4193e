package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"customer-feedback/pkg/tracing"
	"customer-feedback/pkg/utils"

	"go.uber.org/zap"
)

// APIServer serves route until ctx is cancelled or the process gets SIGINT/SIGTERM,
// then drains in-flight requests within the configured shutdown timeout.
func APIServer(ctx context.Context, route http.Handler, config *utils.Config, logger *zap.Logger) error {
	addr := fmt.Sprintf(":%s", config.App.Port)

	shutdownTracing, err := tracing.Setup(ctx, config.Tracing, config.App.Name)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		c, cancel := context.WithTimeout(context.Background(), config.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(c); err != nil {
			logger.Warn("Failed to flush traces", zap.Error(err))
		}
	}()
	if config.Tracing.Enabled {
		logger.Info("Tracing enabled", zap.String("endpoint", config.Tracing.Endpoint))
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      tracing.Handler(route, config.App.Name),
		ReadTimeout:  config.Server.ReadTimeout,
		WriteTimeout: config.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server running", zap.String("addr", "http://localhost"+addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Server shutting down", zap.Duration("timeout", config.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}
