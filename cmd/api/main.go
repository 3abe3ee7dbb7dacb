package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"booky/internal/config"
	apphttp "booky/internal/http"
	"booky/internal/httpx"
	"booky/internal/logging"
	"booky/internal/store"
	"booky/internal/usecase"

	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Default().Fatal().Err(err).Msg("invalid configuration")
	}
	logging.SetDefault(logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format))
	logger := logging.Default()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) error {
	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close()
	logger.Info().Str("driver", st.Driver()).Msg("connection established")

	if cfg.Store.AutoMigrate {
		if err := st.Migrate(ctx); err != nil {
			return err
		}
	}

	httpServer := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      newHandler(ctx, cfg.HTTP, st),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTP.Addr).Msg("Server is up and running")
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

func newHandler(ctx context.Context, cfg config.HTTP, st *store.Store) http.Handler {
	router := apphttp.NewRouter(apphttp.Handlers{
		Books:        apphttp.NewBookHandler(usecase.NewBookUsecase(st.Books)),
		Authors:      apphttp.NewAuthorHandler(usecase.NewAuthorUsecase(st.Authors)),
		Publications: apphttp.NewPublicationHandler(usecase.NewPublicationUsecase(st.Publications)),
		Links:        apphttp.NewLinkHandler(usecase.NewLinkUsecase(st.Tx)),
		Health:       apphttp.NewHealthHandler(st),
	})

	rateLimiter := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.TrustedProxies)

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		rateLimiter.Middleware,
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
	)
}
