package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/campushelp/helpdesk/internal/infra/config"
	"github.com/campushelp/helpdesk/internal/infra/netinfo"
)

// App encapsulates the HTTP server lifecycle.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	server   *http.Server
	resolver *netinfo.Resolver
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server, resolver *netinfo.Resolver) *App {
	return &App{cfg: cfg, logger: logger.With("component", "bootstrap"), server: server, resolver: resolver}
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("http server starting", "address", a.cfg.HTTP.Address)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	// Announce the advertised URL once tunnel discovery settles; visitors
	// reach the chat page by scanning the QR code at /qr.
	go func() {
		url := a.resolver.BaseURL(ctx)
		a.logger.Info("advertised base url resolved", "url", url)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		a.logger.Info("shutdown signal received")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
