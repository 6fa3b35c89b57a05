package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"log-dashboard/internal/aggregators"
	"log-dashboard/internal/dashboards"
	"log-dashboard/internal/fileactions"
	internalhttp "log-dashboard/internal/http"
	"log-dashboard/internal/insights"
	"log-dashboard/internal/logsources"
	"log-dashboard/internal/models"
	"log-dashboard/internal/sessions"
	"log-dashboard/internal/shared/configs"
	"log-dashboard/internal/shared/filestorages"
	"log-dashboard/internal/shared/loggers"
	"log-dashboard/internal/stores"

	"github.com/redis/go-redis/v9"
)

const (
	dashboardPath    = "/dashboard"
	redisDialTimeout = 5 * time.Second
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	redisClient *redis.Client
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level, config.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "log-dashboard").
		Logger()

	location, err := time.LoadLocation(config.Dashboard.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %q: %w", config.Dashboard.TimeZone, err)
	}

	// Initialize log backend client and sessions
	backend := logsources.NewBackendClient(config.Backend.BaseURL, time.Duration(config.Backend.Timeout)*time.Second)
	sessionStore := sessions.NewMemorySessionStore(time.Duration(config.Session.TTL) * time.Minute)

	// Initialize snapshot store
	app := &App{config: config, appLogger: appLogger}
	snapshotStore, err := app.newSnapshotStore()
	if err != nil {
		return nil, err
	}

	// Initialize dashboard service
	aggregator := aggregators.NewMetricsAggregator(aggregators.Options{
		AnomalyThreshold: config.Dashboard.AnomalyThreshold,
		Location:         location,
	})
	presenter := insights.NewPresenter(models.ConfidenceThresholds{
		High:   config.Insights.ConfidenceHigh,
		Medium: config.Insights.ConfidenceMedium,
	})
	dashboardService := dashboards.NewDashboardService(
		backend,
		aggregator,
		snapshotStore,
		dashboards.NewLogRowProjector(),
		presenter,
		dashboards.Options{MaxUploadBytes: config.Dashboard.MaxUploadBytes},
	)

	// Initialize file actions
	fileActions := fileactions.NewRegistry(backend,
		fileactions.NewViewAction(dashboardPath),
		fileactions.NewDownloadAction(backend),
		fileactions.NewDeleteAction(snapshotStore),
	)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(internalhttp.Dependencies{
		Backend:          backend,
		SessionStore:     sessionStore,
		DashboardService: dashboardService,
		FileActions:      fileActions,
	}, internalhttp.RouterOptions{
		SessionCookie: internalhttp.SessionCookieOptions{
			Name:      config.Session.CookieName,
			LoginPath: config.Session.LoginPath,
			Secure:    config.Session.SecureCookie,
		},
		MaxUploadBytes:  config.Dashboard.MaxUploadBytes,
		RefreshInterval: time.Duration(config.Dashboard.RefreshInterval) * time.Second,
	}, httpLogger)

	// Create HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return app, nil
}

func (app *App) newSnapshotStore() (stores.SnapshotStore, error) {
	cfg := app.config.SnapshotStore
	switch cfg.Driver {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:        cfg.Redis.Addr,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			DialTimeout: redisDialTimeout,
		})
		ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		app.redisClient = client
		return stores.NewRedisSnapshotStore(client, time.Duration(cfg.Redis.TTL)*time.Minute), nil
	default:
		fileStorage, err := filestorages.NewFileStorage(app.config.FileStorage.RootDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		return stores.NewFileSnapshotStore(fileStorage), nil
	}
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting log-dashboard on port %d (log_level=%s, backend=%s, snapshot_store=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Backend.BaseURL,
			app.config.SnapshotStore.Driver)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Release the snapshot store connection
	if app.redisClient != nil {
		if err := app.redisClient.Close(); err != nil {
			return fmt.Errorf("redis close failed: %w", err)
		}
		app.appLogger.Info().Msg("Redis connection closed")
	}

	return nil
}
