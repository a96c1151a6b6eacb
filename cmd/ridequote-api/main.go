// README: Entry point; loads config, wires the quote service, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"ridequote/internal/config"
	httptransport "ridequote/internal/http"
	"ridequote/internal/maps"
	"ridequote/internal/modules/quote"
)

func main() {
	envLoaded := godotenv.Load() == nil

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if !envLoaded {
		logger.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	// A missing key is a configuration error, not a crash: the server comes
	// up and every quote fails with a descriptive 500.
	var resolver quote.LegResolver
	if cfg.Maps.APIKey == "" {
		logger.Error("GOOGLE_MAPS_API_KEY is not set; quote requests will fail")
		resolver = maps.Unconfigured{}
	} else {
		distanceSvc, err := maps.NewDistanceService(cfg.Maps.APIKey)
		if err != nil {
			logger.Fatal("maps client init", zap.Error(err))
		}
		resolver = distanceSvc
	}

	quoteSvc := quote.NewService(resolver, cfg.Quote.FixedOrigin, cfg.Quote.Rates)
	router := httptransport.NewRouter(quoteSvc, cfg.CORS.AllowedOrigins, logger)

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening",
			zap.String("addr", cfg.HTTP.Addr),
			zap.String("fixed_origin", cfg.Quote.FixedOrigin),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
