package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jwalitptl/staff-directory/internal/config"
	"github.com/jwalitptl/staff-directory/internal/handler/health"
	"github.com/jwalitptl/staff-directory/internal/repository/postgres"
	"github.com/jwalitptl/staff-directory/internal/worker"
	"github.com/jwalitptl/staff-directory/pkg/logger"
	"github.com/jwalitptl/staff-directory/pkg/messaging"
	"github.com/jwalitptl/staff-directory/pkg/messaging/redis"
	"github.com/jwalitptl/staff-directory/pkg/metrics"
)

// newHealthMux serves liveness, readiness and, when m is set, the worker's metrics.
func newHealthMux(db health.Pinger, m *metrics.Metrics, metricsPath string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health/live", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	if m != nil && metricsPath != "" {
		mux.Handle(metricsPath, m.Handler())
	}
	return mux
}

func setupHealthCheck(port int, handler http.Handler, log *logger.Logger) *http.Server {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(err, "Health check server failed")
		}
	}()
	return srv
}

// logEvents subscribes to the integration channels and logs what it sees.
func logEvents(ctx context.Context, broker messaging.Broker, log *logger.Logger) {
	onError := func(err error) {
		log.Warn("Dropped integration event", "error", err.Error())
	}
	for _, channel := range []string{messaging.ChannelNotifications, messaging.ChannelDirectMessages} {
		err := messaging.Consume(ctx, broker, channel, func(_ context.Context, msg messaging.Message) error {
			log.Info("Integration event received",
				"channel", channel,
				"type", msg.Type,
				"occurred_at", msg.OccurredAt.Format(time.RFC3339),
			)
			return nil
		}, onError)
		if err != nil {
			log.Error(err, "Failed to consume channel", "channel", channel)
		}
	}
}

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
		JSON:       cfg.Log.JSON,
	}).WithFields(map[string]interface{}{"component": "worker"})

	// Initialize database
	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal(err, "Failed to connect to database")
	}
	defer db.Close()

	var workerMetrics *metrics.Metrics
	if cfg.Metrics.Enabled {
		workerMetrics = metrics.New(cfg.Metrics.Namespace)
	}

	notificationRepo := postgres.NewNotificationRepository(postgres.NewBaseRepository(db))
	retention := worker.NewNotificationRetention(
		notificationRepo,
		worker.RetentionConfig{
			RetentionDays: cfg.Notifications.RetentionDays,
			Schedule:      cfg.Notifications.CleanupSchedule,
		},
		log,
		workerMetrics,
	)

	healthSrv := setupHealthCheck(cfg.Worker.HealthPort, newHealthMux(db, workerMetrics, cfg.Metrics.Path), log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("Shutting down...")
		cancel()
	}()

	if cfg.Redis.URL != "" {
		broker, err := redis.NewRedisBroker(cfg.ToBrokerConfig(), log)
		if err != nil {
			log.Fatal(err, "Failed to create Redis broker")
		}
		defer broker.Close()
		logEvents(ctx, broker, log)
	}

	if err := retention.Start(ctx); err != nil {
		log.Error(err, "Notification retention failed to start")
		cancel()
	}
	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = healthSrv.Shutdown(shutdownCtx)
}
