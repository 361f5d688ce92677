package chi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cinedex/internal/domain"
	logpkg "github.com/kailas-cloud/cinedex/internal/logger"
	healthuc "github.com/kailas-cloud/cinedex/internal/usecase/health"
	movieuc "github.com/kailas-cloud/cinedex/internal/usecase/movie"
)

const welcomeHTML = "<h1> Bienvenido a la API de películas </h1>"

// clientMessages are the messages shown to API clients per sentinel.
var clientMessages = map[error]string{
	domain.ErrNotFound:     "Película no encontrada",
	domain.ErrEmptyCatalog: "No hay datos de películas disponibles",
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the movie catalog over HTTP.
type Server struct {
	movies        *movieuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(movies *movieuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		movies: movies,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		invalidQueryHandler,
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, ErrorCodeMovieNotFound),
		sentinelHandler(domain.ErrEmptyCatalog, http.StatusInternalServerError, ErrorCodeEmptyCatalog),
	}
	return s
}

// Home handles GET /.
func (s *Server) Home(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, welcomeHTML)
}

// ListMovies handles GET /movies. A category parameter narrows the list.
func (s *Server) ListMovies(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("category") {
		s.ListMoviesByCategory(w, r)
		return
	}

	movies, err := s.movies.ListAll(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, moviesToResponse(movies))
}

// GetMovie handles GET /movies/{id}.
func (s *Server) GetMovie(w http.ResponseWriter, r *http.Request) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		s.handleDomainError(w, r, fmt.Errorf("%w: %w", domain.ErrInvalidQuery, err))
		return
	}

	m, err := s.movies.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, movieToResponse(m))
}

// ListMoviesByCategory handles GET /movies/?category=X.
func (s *Server) ListMoviesByCategory(w http.ResponseWriter, r *http.Request) {
	var category string
	if err := runtime.BindQueryParameter("form", true, true, "category", r.URL.Query(), &category); err != nil {
		s.handleDomainError(w, r, fmt.Errorf("%w: %w", domain.ErrInvalidQuery, err))
		return
	}

	movies, err := s.movies.ListByCategory(r.Context(), category)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, moviesToResponse(movies))
}

// Chatbot handles GET /chatbot?query=Q.
func (s *Server) Chatbot(w http.ResponseWriter, r *http.Request) {
	var query string
	if err := runtime.BindQueryParameter("form", true, true, "query", r.URL.Query(), &query); err != nil {
		s.handleDomainError(w, r, fmt.Errorf("%w: %w", domain.ErrInvalidQuery, err))
		return
	}

	answer, err := s.movies.Search(r.Context(), query)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	logpkg.FromContextOr(r.Context(), s.logger).Debug("Chatbot answered",
		zap.String("query", query),
		zap.Int("results", len(answer.Results)),
	)
	writeJSON(w, http.StatusOK, answerToResponse(answer))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// NotFound handles unknown routes.
func (s *Server) NotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, ErrorCodeNotFound, "Not Found")
}

// MethodNotAllowed handles known routes called with an unsupported method.
func (s *Server) MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, ErrorCodeMethodNotAllowed, "Method Not Allowed")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a client message for a sentinel error without exposing internals.
func safeDomainMessage(err error) string {
	for sentinel, msg := range clientMessages {
		if errors.Is(err, sentinel) {
			return msg
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// invalidQueryHandler reports parameter binding failures verbatim; they only describe the request.
func invalidQueryHandler(w http.ResponseWriter, err error, _ string) bool {
	if !errors.Is(err, domain.ErrInvalidQuery) {
		return false
	}
	writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logpkg.FromContextOr(r.Context(), s.logger)
	logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
