package http

import (
	"net/http"
	"time"

	"log-dashboard/internal/dashboards"
	"log-dashboard/internal/fileactions"
	"log-dashboard/internal/logsources"
	"log-dashboard/internal/sessions"
	"log-dashboard/internal/shared/loggers"
	"log-dashboard/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

type Dependencies struct {
	Backend          logsources.BackendClient
	SessionStore     sessions.SessionStore
	DashboardService dashboards.DashboardService
	FileActions      fileactions.Registry
}

type RouterOptions struct {
	SessionCookie   SessionCookieOptions
	MaxUploadBytes  int64
	RefreshInterval time.Duration
}

// NewRouter creates and configures the HTTP router.
func NewRouter(deps Dependencies, opts RouterOptions, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Public routes
	router.Get("/health", errorHandlingAdapter(NewHealthHandler(deps.Backend)))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)
	router.Post("/login", errorHandlingAdapter(NewLoginHandler(deps.Backend, deps.SessionStore, opts.SessionCookie)))
	router.Post("/register", errorHandlingAdapter(NewRegisterHandler(deps.Backend)))
	router.Post("/logout", errorHandlingAdapter(NewLogoutHandler(deps.SessionStore, opts.SessionCookie)))

	// Routes behind the auth gate
	router.Route("/api", func(r chi.Router) {
		r.Use(mwAuthGate(deps.SessionStore, opts.SessionCookie))

		r.Get("/files", errorHandlingAdapter(NewFilesHandler(deps.DashboardService)))
		r.Post("/uploads", errorHandlingAdapter(NewUploadHandler(deps.DashboardService, opts.MaxUploadBytes)))
		r.Get("/actions", errorHandlingAdapter(NewActionsHandler(deps.FileActions)))
		r.Route("/files/{fileHash}", func(r chi.Router) {
			r.Get("/dashboard", errorHandlingAdapter(NewDashboardHandler(deps.DashboardService)))
			r.Get("/logs", errorHandlingAdapter(NewLogsHandler(deps.DashboardService)))
			r.Post("/analysis", errorHandlingAdapter(NewAnalysisHandler(deps.DashboardService)))
			r.Post("/actions/{action}", errorHandlingAdapter(NewFileActionHandler(deps.FileActions)))
			r.Get("/live", errorHandlingAdapter(NewLiveHandler(deps.DashboardService, opts.RefreshInterval)))
		})
	})

	return router
}
