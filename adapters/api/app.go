package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"metapool/internal"
	"metapool/internal/analysis/pooling"
	"metapool/internal/config"
)

// App wires the pooling engine behind an HTTP surface. The engine is a pure
// function, so a single instance serves all requests concurrently.
type App struct {
	router *chi.Mux
	engine *pooling.Engine
	cfg    *config.Config
	logger *internal.Logger
}

// NewApp creates the API application
func NewApp(cfg *config.Config) *App {
	app := &App{
		router: chi.NewRouter(),
		engine: pooling.NewEngine(),
		cfg:    cfg,
		logger: internal.NewDefaultLogger(),
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/healthz", a.handleHealth)
	a.router.Post("/api/meta-analysis", a.handleMetaAnalysis)
	a.router.Post("/api/meta-analysis/batch", a.handleMetaAnalysisBatch)
}

// Router exposes the handler for tests and embedding
func (a *App) Router() http.Handler {
	return a.router
}

// Start starts the HTTP server
func (a *App) Start() error {
	addr := fmt.Sprintf(":%s", a.cfg.Server.Port)
	a.logger.Info("Starting metapool API server on %s", addr)
	return http.ListenAndServe(addr, a.router)
}
