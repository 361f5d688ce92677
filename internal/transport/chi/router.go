package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cinedex/internal/config"
	"github.com/kailas-cloud/cinedex/internal/metrics"
)

// NewRouter mounts the server's handlers behind the standard middleware stack.
func NewRouter(s *Server, cfg config.HTTPConfig, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(corsMiddleware(cfg.CORS))
	r.Use(rateLimitMiddleware(cfg.RateLimit))
	r.Use(metrics.Middleware())

	r.NotFound(s.NotFound)
	r.MethodNotAllowed(s.MethodNotAllowed)

	r.Get("/", s.Home)
	r.Get("/movies", s.ListMovies)
	r.Get("/movies/", s.ListMoviesByCategory)
	r.Get("/movies/{id}", s.GetMovie)
	r.Get("/chatbot", s.Chatbot)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	return r
}
