package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"offboarding-service/internal/config"
	"offboarding-service/internal/db"
	"offboarding-service/internal/httpapi"
	"offboarding-service/internal/service"
)

func newLogger(cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	// -- Configs preload --
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config error", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)

	// -- Connect to DB (bounded retries, fatal on exhaustion) --
	database, err := db.Connect(cfg, logger)
	if err != nil {
		logger.Error("database connection error", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close(database) }()

	if err := db.Migrate(database); err != nil {
		logger.Error("migration error", "error", err)
		os.Exit(1)
	}

	offboardingService := service.NewOffboardingService(database, cfg.QueryTimeout)
	handler := httpapi.NewHandler(offboardingService, logger)

	// -- Router --
	mux := http.NewServeMux()
	mux.Handle("/api/", handler)

	server := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: httpapi.Chain(mux,
			httpapi.RequestID,
			httpapi.Logging(logger),
			httpapi.Recover(logger),
			httpapi.CORS(cfg.CORSAllowedOrigins),
		),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// -- Startup --
	go func() {
		logger.Info("starting server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	// -- Shutdown: drain in-flight requests, then release the pool --
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
