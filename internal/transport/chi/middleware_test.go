package chi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cinedex/internal/config"
)

func TestJSONRecoverer(t *testing.T) {
	h := jsonRecoverer(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if resp := decode[ErrorResponse](t, rec); resp.Code != ErrorCodeInternalError || resp.Message != "internal error" {
		t.Errorf("response = %+v", resp)
	}
}

func TestRequestIDHeader(t *testing.T) {
	rec := do(t, newTestRouter(t, sampleMovies(), testConfig()), http.MethodGet, "/movies")

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestCORS_AllowsAnyOrigin(t *testing.T) {
	h := newTestRouter(t, sampleMovies(), testConfig())

	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	req.Header.Set("Origin", "http://frontend.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Errorf("expected Access-Control-Allow-Origin, headers: %v", rec.Header())
	}
}

func TestCORS_Preflight(t *testing.T) {
	h := newTestRouter(t, sampleMovies(), testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/chatbot", nil)
	req.Header.Set("Origin", "http://frontend.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Errorf("expected Access-Control-Allow-Origin on preflight, headers: %v", rec.Header())
	}
	if rec.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Errorf("expected Access-Control-Allow-Methods on preflight, headers: %v", rec.Header())
	}
}

func TestCORSMiddleware_DoesNotMutateConfig(t *testing.T) {
	cfg := config.CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"get", "post"},
		AllowedHeaders: []string{"*"},
	}
	corsMiddleware(cfg)

	if cfg.AllowedMethods[0] != "get" {
		t.Errorf("config slice mutated: %v", cfg.AllowedMethods)
	}
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{Requests: 1, WindowSec: 60}
	h := newTestRouter(t, sampleMovies(), cfg)

	if rec := do(t, h, http.MethodGet, "/movies"); rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d", rec.Code)
	}

	rec := do(t, h, http.MethodGet, "/movies")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d", rec.Code)
	}
	if resp := decode[ErrorResponse](t, rec); resp.Code != ErrorCodeRateLimited {
		t.Errorf("code = %q", resp.Code)
	}
}

func TestRateLimit_DisabledByDefault(t *testing.T) {
	h := newTestRouter(t, sampleMovies(), testConfig())

	for i := 0; i < 5; i++ {
		if rec := do(t, h, http.MethodGet, "/movies"); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, rec.Code)
		}
	}
}
