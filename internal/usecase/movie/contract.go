package movie

import (
	"context"

	"github.com/kailas-cloud/cinedex/internal/domain/catalog"
	"github.com/kailas-cloud/cinedex/internal/domain/movie"
)

// Matcher runs a free-text query against the catalog.
type Matcher interface {
	Match(ctx context.Context, query string, cat *catalog.Catalog) ([]movie.Movie, error)
}
