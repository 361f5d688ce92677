package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates an optional component is failing.
	Degraded Status = "degraded"
	// Unhealthy indicates the catalog itself is unusable.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	catalog CatalogCounter
	cache   CachePinger
	model   ModelChecker
}

// New creates a Service. cache and model can be nil when disabled.
func New(catalog CatalogCounter, cache CachePinger, model ModelChecker) *Service {
	return &Service{catalog: catalog, cache: cache, model: model}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	catalogOK := s.catalog.Len() > 0
	checks["catalog"] = result(catalogOK)

	if s.cache != nil {
		checks["cache"] = result(s.cache.Ping(ctx) == nil)
	}
	if s.model != nil {
		checks["model"] = result(s.model.HealthCheck(ctx) == nil)
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}
	if !catalogOK {
		status = Unhealthy
	}

	return Report{Status: status, Checks: checks}
}

func result(ok bool) CheckResult {
	if ok {
		return CheckOK
	}
	return CheckError
}
