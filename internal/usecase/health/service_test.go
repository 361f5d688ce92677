package health

import (
	"context"
	"errors"
	"testing"
)

// --- Mocks ---

type mockCatalog struct {
	n int
}

func (m mockCatalog) Len() int { return m.n }

type mockCachePinger struct {
	err error
}

func (m *mockCachePinger) Ping(_ context.Context) error { return m.err }

type mockModelChecker struct {
	err error
}

func (m *mockModelChecker) HealthCheck(_ context.Context) error { return m.err }

// --- Tests ---

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(mockCatalog{n: 25}, &mockCachePinger{}, &mockModelChecker{})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	for _, name := range []string{"catalog", "cache", "model"} {
		if r.Checks[name] != CheckOK {
			t.Errorf("expected %s %q, got %q", name, CheckOK, r.Checks[name])
		}
	}
}

func TestCheck_CatalogOnly(t *testing.T) {
	svc := New(mockCatalog{n: 1}, nil, nil)
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if len(r.Checks) != 1 {
		t.Errorf("expected only the catalog check, got %v", r.Checks)
	}
}

func TestCheck_EmptyCatalog(t *testing.T) {
	svc := New(mockCatalog{}, &mockCachePinger{}, nil)
	r := svc.Check(context.Background())

	if r.Status != Unhealthy {
		t.Errorf("expected %q, got %q", Unhealthy, r.Status)
	}
	if r.Checks["catalog"] != CheckError {
		t.Errorf("expected catalog %q, got %q", CheckError, r.Checks["catalog"])
	}
}

func TestCheck_CacheError(t *testing.T) {
	svc := New(mockCatalog{n: 3}, &mockCachePinger{err: errors.New("conn refused")}, &mockModelChecker{})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["cache"] != CheckError {
		t.Errorf("expected cache %q, got %q", CheckError, r.Checks["cache"])
	}
	if r.Checks["model"] != CheckOK {
		t.Errorf("expected model %q, got %q", CheckOK, r.Checks["model"])
	}
}

func TestCheck_ModelError(t *testing.T) {
	svc := New(mockCatalog{n: 3}, nil, &mockModelChecker{err: errors.New("timeout")})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["model"] != CheckError {
		t.Errorf("expected model %q, got %q", CheckError, r.Checks["model"])
	}
	if _, ok := r.Checks["cache"]; ok {
		t.Error("cache check should be absent when cache is nil")
	}
}
