package synonym

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cinedex/internal/domain/terms"
	"github.com/kailas-cloud/cinedex/internal/metrics"
)

// Expander unions the synonyms of every configured source.
// A failing source is logged and skipped, so adding a source never shrinks a result.
type Expander struct {
	sources []Source
	logger  *zap.Logger
}

// New creates an Expander over the given sources, queried in order.
func New(logger *zap.Logger, sources ...Source) *Expander {
	return &Expander{sources: sources, logger: logger}
}

// Sources returns the configured source names.
func (e *Expander) Sources() []string {
	names := make([]string, len(e.sources))
	for i, s := range e.sources {
		names[i] = s.Name()
	}
	return names
}

// Synonyms returns the union of every source's synonyms for word.
// The only error is cancellation of ctx.
func (e *Expander) Synonyms(ctx context.Context, word string) (terms.Set, error) {
	out := terms.New()
	for _, src := range e.sources {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("expand %q: %w", word, err)
		}

		start := time.Now()
		set, err := src.Synonyms(ctx, word)
		metrics.SynonymLookupDuration.WithLabelValues(src.Name()).Observe(time.Since(start).Seconds())

		if err != nil {
			metrics.SynonymLookupsTotal.WithLabelValues(src.Name(), "error").Inc()
			e.logger.Warn("Synonym source failed, skipping",
				zap.String("source", src.Name()),
				zap.String("word", word),
				zap.Error(err),
			)
			continue
		}
		metrics.SynonymLookupsTotal.WithLabelValues(src.Name(), "success").Inc()
		out.Union(set)
	}
	return out, nil
}
