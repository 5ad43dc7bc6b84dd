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

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/staff-directory/internal/config"
	"github.com/jwalitptl/staff-directory/internal/handler"
	conversationHandler "github.com/jwalitptl/staff-directory/internal/handler/conversation"
	employeeHandler "github.com/jwalitptl/staff-directory/internal/handler/employee"
	"github.com/jwalitptl/staff-directory/internal/handler/health"
	messageHandler "github.com/jwalitptl/staff-directory/internal/handler/message"
	notificationHandler "github.com/jwalitptl/staff-directory/internal/handler/notification"
	"github.com/jwalitptl/staff-directory/internal/handler/prometheus"
	"github.com/jwalitptl/staff-directory/internal/middleware"
	"github.com/jwalitptl/staff-directory/internal/repository/postgres"
	"github.com/jwalitptl/staff-directory/internal/router"
	conversationService "github.com/jwalitptl/staff-directory/internal/service/conversation"
	employeeService "github.com/jwalitptl/staff-directory/internal/service/employee"
	messageService "github.com/jwalitptl/staff-directory/internal/service/message"
	notificationService "github.com/jwalitptl/staff-directory/internal/service/notification"
	"github.com/jwalitptl/staff-directory/pkg/auth"
	"github.com/jwalitptl/staff-directory/pkg/logger"
	"github.com/jwalitptl/staff-directory/pkg/messaging"
	"github.com/jwalitptl/staff-directory/pkg/messaging/redis"
	"github.com/jwalitptl/staff-directory/pkg/metrics"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
		JSON:       cfg.Log.JSON,
	})

	// Initialize database
	if cfg.Server.AutoMigrate {
		if err := postgres.Migrate(cfg.Database.URL(), postgres.MigrateUp); err != nil {
			log.Fatal(err, "failed to run migrations")
		}
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	// Initialize message broker
	var broker messaging.Broker = messaging.NopBroker{}
	if cfg.Redis.URL != "" {
		broker, err = redis.NewRedisBroker(cfg.ToBrokerConfig(), log)
		if err != nil {
			log.Fatal(err, "failed to connect to Redis")
		}
	}
	defer broker.Close()

	appMetrics := metrics.New(cfg.Metrics.Namespace)
	tokens := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize repositories
	baseRepo := postgres.NewBaseRepository(db)
	employeeRepo := postgres.NewEmployeeRepository(baseRepo)
	messageRepo := postgres.NewMessageRepository(baseRepo)
	directMessageRepo := postgres.NewDirectMessageRepository(baseRepo)
	notificationRepo := postgres.NewNotificationRepository(baseRepo)

	// Initialize services
	employeeSvc := employeeService.NewService(
		employeeRepo,
		cache.New(cfg.Cache.TTL, cfg.Cache.CleanupInterval),
		tokens,
		log,
	)
	messageSvc := messageService.NewService(messageRepo, employeeSvc, log)
	notificationSvc := notificationService.NewService(
		notificationRepo,
		employeeSvc,
		broker,
		appMetrics,
		log,
		cfg.Notifications.ListLimit,
	)
	conversationSvc := conversationService.NewService(directMessageRepo, employeeSvc, broker, appMetrics, log)

	// Every new post fans out to all other employees
	messageSvc.RegisterHook(notificationSvc)

	// Initialize handlers
	resp := handler.Responder{ExposeErrors: cfg.Server.ExposeErrors}

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.Server.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	}

	routerConfig := router.RouterConfig{
		Mode:        cfg.Server.Mode,
		CORSConfig:  corsConfig,
		MaxBodySize: middleware.DefaultMaxBodySize,
		Responder:   resp,
		Tokens:      tokens,
		Logger:      log,
		Health:      health.NewHandler(db),
		FeatureRoutes: []router.Handler{
			employeeHandler.NewHandler(employeeSvc, messageSvc, resp),
			messageHandler.NewHandler(messageSvc, resp),
			conversationHandler.NewHandler(conversationSvc, resp),
			notificationHandler.NewHandler(notificationSvc, resp),
		},
	}
	if cfg.RateLimit.Enabled {
		routerConfig.RateLimit = rate.Limit(cfg.RateLimit.RequestsPerSecond)
		routerConfig.RateBurst = cfg.RateLimit.Burst
	}
	if cfg.Metrics.Enabled {
		routerConfig.Metrics = prometheus.New(appMetrics)
		routerConfig.MetricsPath = cfg.Metrics.Path
	}

	// Setup router
	r := router.NewRouter(routerConfig)
	r.Setup()

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err, "failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error(err, "server forced to shutdown")
	}

	log.Info("server exited properly")
}
