package health

import "context"

// CatalogCounter reports how many movies are loaded.
type CatalogCounter interface {
	Len() int
}

// CachePinger checks synonym cache availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// ModelChecker checks synonym model provider availability.
type ModelChecker interface {
	HealthCheck(ctx context.Context) error
}
