package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cimillas/event-admin/internal/app"
	"github.com/cimillas/event-admin/internal/clock"
	"github.com/cimillas/event-admin/internal/config"
	"github.com/cimillas/event-admin/internal/database"
	"github.com/cimillas/event-admin/internal/notify"
	"github.com/cimillas/event-admin/internal/storage/postgres"
	transporthttp "github.com/cimillas/event-admin/internal/transport/http"
	"github.com/cimillas/event-admin/migrations"
)

const startupTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	logger := newLogger(os.Stdout, cfg)
	slog.SetDefault(logger)

	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	pool, err := database.NewPool(startupCtx, cfg.DatabaseURL, database.Options{
		MaxConns:     cfg.DBMaxConns,
		ConnAttempts: 5,
		Logger:       logger,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	applied, err := migrations.Apply(startupCtx, pool)
	if err != nil {
		return err
	}
	if len(applied) > 0 {
		logger.Info("migrations applied", "files", applied)
	}

	notifier, closeNotifier := newNotifier(cfg, logger)
	defer closeNotifier()

	eventRepo := postgres.NewEventRepository(pool)
	services := transporthttp.Services{
		Profiles:  app.NewProfileService(postgres.NewProfileRepository(pool)),
		Events:    app.NewEventService(eventRepo, logger),
		Tickets:   app.NewTicketService(postgres.NewTicketRepository(pool), logger),
		Attendees: app.NewAttendeeService(postgres.NewAttendeeRepository(pool), eventRepo, notifier, clock.NewSystem(), logger),
		Dashboard: app.NewDashboardService(postgres.NewDashboardRepository(pool)),
	}

	server := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: transporthttp.NewRouter(services, transporthttp.RouterOptions{
			Logger:      logger,
			CORSOrigins: cfg.CORSOrigins,
			DB:          pool,
		}),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("api listening", "addr", server.Addr)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
		}
	case <-stopCtx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server shutdown error", "error", err)
	}
	logger.Info("server stopped")
	return nil
}

func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// newNotifier publishes to RabbitMQ when RABBITMQ_URL is set and falls back
// to logging confirmations when it is unset or unreachable.
func newNotifier(cfg config.Config, logger *slog.Logger) (app.Notifier, func()) {
	if cfg.RabbitURL == "" {
		return notify.NewLogNotifier(logger), func() {}
	}
	n, err := notify.NewAMQPNotifier(cfg.RabbitURL, logger)
	if err != nil {
		logger.Warn("rabbitmq unavailable, logging confirmations instead", "error", err)
		return notify.NewLogNotifier(logger), func() {}
	}
	logger.Info("publishing confirmations", "exchange", notify.ExchangeName)
	return n, n.Close
}
