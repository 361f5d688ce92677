package cinedex

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/cinedex/internal/domain/terms"
)

// sourceAdapter wraps a public SynonymSource to satisfy the internal synonym.Source.
type sourceAdapter struct {
	inner SynonymSource
}

func (a *sourceAdapter) Name() string { return a.inner.Name() }

func (a *sourceAdapter) Synonyms(ctx context.Context, word string) (terms.Set, error) {
	items, err := a.inner.Synonyms(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("synonym source %s: %w", a.inner.Name(), err)
	}
	return terms.New(items...), nil
}
