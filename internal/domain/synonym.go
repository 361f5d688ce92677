package domain

import (
	"context"

	"github.com/kailas-cloud/cinedex/internal/domain/terms"
)

// SynonymSource maps a single word to its known alternate surface forms.
// Unknown words yield an empty set, not an error.
type SynonymSource interface {
	Synonyms(ctx context.Context, word string) (terms.Set, error)
}

// HealthChecker is optionally implemented by sources backed by a remote service.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
