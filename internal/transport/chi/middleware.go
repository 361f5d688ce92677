package chi

import (
	"net/http"
	"slices"
	"strings"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cinedex/internal/config"
	logpkg "github.com/kailas-cloud/cinedex/internal/logger"
)

var allMethods = []string{
	http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
	http.MethodPatch, http.MethodDelete, http.MethodOptions,
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if rvr == http.ErrAbortHandler {
						panic(rvr)
					}
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.String("path", r.URL.Path),
						zap.Stack("stacktrace"),
					)
					writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("query", r.URL.RawQuery),
				zap.Int("status", status),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}

// corsMiddleware builds the CORS policy. A "*" method entry allows every method.
func corsMiddleware(cfg config.CORSConfig) func(next http.Handler) http.Handler {
	methods := make([]string, 0, len(cfg.AllowedMethods))
	for _, m := range cfg.AllowedMethods {
		if m == "*" {
			methods = slices.Clone(allMethods)
			break
		}
		methods = append(methods, strings.ToUpper(m))
	}

	allowCredentials := true
	if cfg.AllowCredentials != nil {
		allowCredentials = *cfg.AllowCredentials
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   methods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: allowCredentials,
		MaxAge:           cfg.MaxAgeSec,
	})
}

// rateLimitMiddleware limits requests per client IP. Requests == 0 disables it.
func rateLimitMiddleware(cfg config.RateLimitConfig) func(next http.Handler) http.Handler {
	if cfg.Requests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		cfg.Requests,
		time.Duration(cfg.WindowSec)*time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			writeError(w, http.StatusTooManyRequests, ErrorCodeRateLimited, "rate limit exceeded")
		}),
	)
}
