package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zivilschutz/schutzraum-api/config"
	httpx "github.com/zivilschutz/schutzraum-api/internal/http"
)

const (
	readTimeout     = 30 * time.Second
	writeTimeout    = 30 * time.Second
	idleTimeout     = 120 * time.Second
	shutdownTimeout = 10 * time.Second
)

// BuildHTTPServer assembles the router and wraps it in the shared
// middleware chain. Recovery sits outermost so a panicking handler
// still produces a logged 500.
func BuildHTTPServer(cfg config.HTTPConfig, services *ServiceContainer, logger *slog.Logger) *http.Server {
	router := httpx.NewRouter(httpx.RouterServices{
		Auth:          services.Auth,
		Shelters:      services.Shelters,
		Notifications: services.Notifications,
		Dashboard:     services.Dashboard,
		Crisis:        services.Crisis,
		Analytics:     services.Analytics,
		Geo:           services.Geo,
		CookieDomain:  cfg.CookieDomain,
		Logger:        logger,
	})

	handler := httpx.Recover(logger)(httpx.Logging(logger)(router))

	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
}

// RunHTTPServer serves until ctx is cancelled, then drains in-flight
// requests before returning. A listen failure and a shutdown failure
// both surface as the returned error.
func RunHTTPServer(ctx context.Context, server *http.Server, logger *slog.Logger) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.InfoContext(ctx, "http server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", server.Addr, err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
