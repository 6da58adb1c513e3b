package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/insider-one/telert-api/internal/middleware"
	"github.com/insider-one/telert-api/internal/service"
)

// RouterConfig holds everything the HTTP surface is built from
type RouterConfig struct {
	Service   *service.NotificationService
	Metrics   *Metrics
	Logger    *slog.Logger
	CORS      middleware.CORSConfig
	StaticDir string
}

// NewRouter wires middleware and routes
func NewRouter(cfg RouterConfig) http.Handler {
	infoHandler := NewInfoHandler(cfg.StaticDir)
	providerHandler := NewProviderHandler(cfg.Service)
	notificationHandler := NewNotificationHandler(cfg.Service)

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Correlation)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(chimiddleware.Compress(5))

	// Info
	r.Get("/", infoHandler.Root)
	r.Get("/health", infoHandler.Health)
	r.Get("/status", providerHandler.Status)

	// Configuration
	r.Get("/providers", providerHandler.List)

	// Notifications
	r.Post("/send", notificationHandler.Send)

	if infoHandler.HasStatic() {
		r.Handle("/static/*", infoHandler.StaticHandler())
		cfg.Logger.Info("serving static files", "dir", cfg.StaticDir)
	}

	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/index.html", http.StatusMovedPermanently)
	})
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics.Handler())
	}

	return r
}
