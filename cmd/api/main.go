// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/tecops/assetdesk/internal/adapters/db"
	"github.com/tecops/assetdesk/internal/adapters/graph"
	redis_a "github.com/tecops/assetdesk/internal/adapters/redis_adapter"
	"github.com/tecops/assetdesk/internal/core/services"
	"github.com/tecops/assetdesk/internal/handlers"
	"github.com/tecops/assetdesk/internal/handlers/middleware"
	"github.com/tecops/assetdesk/internal/pkg/config"
	"github.com/tecops/assetdesk/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	appLogger := logger.SetupLogger("debug", "json")
	slogger := appLogger.Logger

	slogger.Info("starting assetdesk api",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	appLogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger = appLogger.Logger
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx := context.Background()

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	if err := runMigrations(ctx, cfg, slogger); err != nil {
		slogger.Error("failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	server := setupHTTPServer(cfg, deps, appLogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
		)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received",
			slog.String("signal", sig.String()),
		)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database    *db.Database
	redisClient *redis.Client
	asynqClient *asynq.Client

	inventoryHandler *handlers.InventoryHandler
	licenseHandler   *handlers.LicenseHandler
	deviceHandler    *handlers.DeviceHandler
	dashboardHandler *handlers.DashboardHandler
	usersHandler     *handlers.UsersHandler
	healthHandler    *handlers.HealthHandler
}

func (d *dependencies) cleanup() {
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.database != nil {
		d.database.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, slogger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	slogger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, slogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	slogger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		MaxRetries:   cfg.Redis.MaxRetries,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	deps.redisClient = redisClient

	cache := redis_a.NewCache(redisClient, slogger)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	})
	deps.asynqClient = asynqClient

	directory := graph.NewClient(ctx, graph.Config{
		TenantID:     cfg.Directory.TenantID,
		ClientID:     cfg.Directory.ClientID,
		ClientSecret: cfg.Directory.ClientSecret,
		BaseURL:      cfg.Directory.BaseURL,
		Scope:        cfg.Directory.Scope,
		PageTimeout:  cfg.Directory.PageTimeout,
	}, slogger)

	store := db.NewStore(database, slogger)

	inventoryService := services.NewInventoryService(store, slogger)
	allocationService := services.NewAllocationService(store, slogger)
	reconcileService := services.NewReconcileService(store, directory, cache, cfg.Directory.UserCacheTTL, slogger)

	deps.inventoryHandler = handlers.NewInventoryHandler(inventoryService, slogger)
	deps.licenseHandler = handlers.NewLicenseHandler(allocationService, slogger)
	deps.deviceHandler = handlers.NewDeviceHandler(allocationService, slogger)
	deps.dashboardHandler = handlers.NewDashboardHandler(reconcileService, asynqClient, slogger)
	deps.usersHandler = handlers.NewUsersHandler(reconcileService, slogger)
	deps.healthHandler = handlers.NewHealthHandler(database, redisClient, cfg, slogger)

	slogger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, appLogger *logger.Logger) *http.Server {
	mux := http.NewServeMux()
	registerRoutes(mux, deps)

	// Middleware chain, innermost first
	var handler http.Handler = mux
	handler = middleware.Timeout(cfg.Server.WriteTimeout)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Logger(appLogger)(handler)
	handler = middleware.Recovery(appLogger.Logger)(handler)

	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}

	if len(cfg.Security.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Security.AllowedOrigins)(handler)
	}

	handler = middleware.Compression(handler)
	handler = middleware.SecureHeaders(handler)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(appLogger.Handler(), slog.LevelError),
	}
}

func registerRoutes(mux *http.ServeMux, deps *dependencies) {
	apiV1 := "/api/v1"

	mux.HandleFunc("GET /health", deps.healthHandler.Health)
	mux.HandleFunc("GET /ready", deps.healthHandler.Readiness)

	// Inventory
	mux.HandleFunc("GET "+apiV1+"/inventory", deps.inventoryHandler.List)
	mux.HandleFunc("POST "+apiV1+"/inventory", deps.inventoryHandler.Create)
	mux.HandleFunc("POST "+apiV1+"/inventory/bulk", deps.inventoryHandler.BulkImport)
	mux.HandleFunc("GET "+apiV1+"/inventory/{id}", deps.inventoryHandler.Get)
	mux.HandleFunc("PATCH "+apiV1+"/inventory/{id}", deps.inventoryHandler.Update)
	mux.HandleFunc("DELETE "+apiV1+"/inventory/{id}", deps.inventoryHandler.Delete)
	mux.HandleFunc("GET "+apiV1+"/history", deps.inventoryHandler.History)

	// License pools and seat allocation
	mux.HandleFunc("GET "+apiV1+"/licenses", deps.licenseHandler.ListPools)
	mux.HandleFunc("POST "+apiV1+"/licenses", deps.licenseHandler.CreatePool)
	mux.HandleFunc("POST "+apiV1+"/licenses/{id}/allocate", deps.licenseHandler.Allocate)
	mux.HandleFunc("POST "+apiV1+"/assignments/{id}/return", deps.licenseHandler.ReturnAssignment)
	mux.HandleFunc("POST "+apiV1+"/assignments", deps.licenseHandler.AssignItem)
	mux.HandleFunc("POST "+apiV1+"/assignments/unassign", deps.licenseHandler.UnassignByItem)

	// Devices
	mux.HandleFunc("GET "+apiV1+"/devices", deps.deviceHandler.List)
	mux.HandleFunc("POST "+apiV1+"/devices", deps.deviceHandler.Create)
	mux.HandleFunc("GET "+apiV1+"/devices/{id}", deps.deviceHandler.Get)
	mux.HandleFunc("PATCH "+apiV1+"/devices/{id}", deps.deviceHandler.Update)
	mux.HandleFunc("DELETE "+apiV1+"/devices/{id}", deps.deviceHandler.Delete)

	// Dashboard and directory reconciliation
	mux.HandleFunc("GET "+apiV1+"/dashboard/summary", deps.dashboardHandler.Summary)
	mux.HandleFunc("POST "+apiV1+"/dashboard/snapshots", deps.dashboardHandler.TriggerSnapshot)
	mux.HandleFunc("GET "+apiV1+"/dashboard/snapshots", deps.dashboardHandler.ListSnapshots)
	mux.HandleFunc("GET "+apiV1+"/users", deps.usersHandler.List)
}

func runMigrations(ctx context.Context, cfg *config.Config, slogger *slog.Logger) error {
	slogger.Info("running database migrations")

	migrator, err := db.NewMigrator(cfg.GetDatabaseURL(), slogger)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer migrator.Close()

	return migrator.Up(ctx)
}
