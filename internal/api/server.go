// Package api provides the HTTP API server and handlers for the Clutchboard application.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/clutchboard/clutchboard-server/internal/store"
)

// Options holds server tuning knobs that come from configuration.
type Options struct {
	CORSOrigins []string // Allowed browser origins for the admin UI
	IngestRPS   float64  // Draft submissions allowed per second per IP
	IngestBurst int      // Draft submission burst size
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	store         store.Store
	services      *Services
	router        *chi.Mux
	api           huma.API
	logger        *slog.Logger
	ingestLimiter *RateLimiter
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(store store.Store, services *Services, opts Options, logger *slog.Logger) *Server {
	router := chi.NewRouter()

	s := &Server{
		store:         store,
		services:      services,
		router:        router,
		logger:        logger,
		ingestLimiter: NewRateLimiter(opts.IngestRPS, opts.IngestBurst),
	}

	s.setupMiddleware(opts)

	humaConfig := huma.DefaultConfig("Clutchboard API", "1.0.0")
	humaConfig.Transformers = append(humaConfig.Transformers, EnvelopeTransformer)
	s.api = humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s.registerHealthRoutes()
	s.registerTeamRoutes()
	s.registerPlayerRoutes()
	s.registerDraftRoutes()
	s.registerMappingRoutes()
	s.registerMatchRoutes()
	s.registerSearchRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware(opts Options) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Draft submissions come from the screenshot extractor and are the one
	// write path open to bursty automated traffic.
	s.router.Use(RateLimitMiddleware(s.ingestLimiter, http.MethodPost, "/api/v1/drafts", s.logger))
}
