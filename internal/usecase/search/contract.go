package search

import (
	"context"

	"github.com/kailas-cloud/cinedex/internal/domain/terms"
)

// Expander returns the alternate surface forms of one word.
type Expander interface {
	Synonyms(ctx context.Context, word string) (terms.Set, error)
}
