package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"fraudshield/internal/api/handlers"
	apimiddleware "fraudshield/internal/api/middleware"
	"fraudshield/internal/config"
	"fraudshield/internal/infrastructure/cache"
	"fraudshield/pkg/logger"
)

// Router holds dependencies for the API router
type Router struct {
	config   config.Config
	handlers *handlers.Handlers
	cache    *cache.RedisCache
	logger   *logger.Logger
}

// NewRouter creates a new Router instance
func NewRouter(cfg config.Config, h *handlers.Handlers, c *cache.RedisCache, log *logger.Logger) *Router {
	return &Router{
		config:   cfg,
		handlers: h,
		cache:    c,
		logger:   log.WithComponent("router"),
	}
}

// Setup sets up the Chi router with all routes and middleware
func (r *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Core middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(apimiddleware.Logger(r.logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.config.CORS.AllowedOrigins,
		AllowedMethods:   r.config.CORS.AllowedMethods,
		AllowedHeaders:   r.config.CORS.AllowedHeaders,
		AllowCredentials: r.config.CORS.AllowCredentials,
		MaxAge:           r.config.CORS.MaxAge,
	}))

	// Rate limiting
	if r.config.RateLimit.Enabled && r.cache != nil {
		router.Use(apimiddleware.RateLimiter(r.cache, r.config.RateLimit))
	}

	// Public routes
	router.Group(func(pub chi.Router) {
		pub.Get("/health", r.handlers.Health.Check)
		pub.Get("/ready", r.handlers.Health.Ready)
	})

	// API v1 routes (authenticated)
	router.Route("/api/v1", func(api chi.Router) {
		if r.config.Auth.Enabled {
			api.Use(apimiddleware.APIKeyAuth(r.config.Auth.APIKeys))
		}

		// Analysis endpoints
		api.Route("/analyze", func(analyze chi.Router) {
			analyze.Post("/content", r.handlers.Analyze.Content)
			analyze.Post("/link", r.handlers.Analyze.Link)
			analyze.Post("/screenshot", r.handlers.Analyze.Screenshot)
		})

		// Per-device analysis history
		api.Route("/history", func(history chi.Router) {
			history.Get("/", r.handlers.History.List)
			history.Get("/summary", r.handlers.History.Summary)
		})

		// Threat intelligence tables
		api.Route("/intel", func(intel chi.Router) {
			intel.Get("/patterns", r.handlers.Intel.Patterns)
			intel.Get("/stats", r.handlers.Intel.Stats)
		})

		// Service-wide counters
		api.Get("/stats", r.handlers.Stats.Get)
	})

	return router
}
