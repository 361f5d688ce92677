// Package search matches free-text queries against movie categories.
package search

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/kailas-cloud/cinedex/internal/domain/catalog"
	"github.com/kailas-cloud/cinedex/internal/domain/movie"
	"github.com/kailas-cloud/cinedex/internal/domain/terms"
)

// Service tokenizes a query, expands it with synonyms and filters the catalog.
type Service struct {
	expander Expander
}

// New creates a search service.
func New(expander Expander) *Service {
	return &Service{expander: expander}
}

// Tokenize lower-cases the query and splits it at every rune that is
// neither a letter nor a digit.
func Tokenize(query string) []string {
	return strings.FieldsFunc(terms.Lower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Expand returns the tokens together with every synonym of every token.
func (s *Service) Expand(ctx context.Context, tokens []string) (terms.Set, error) {
	set := terms.New(tokens...)
	for _, tok := range tokens {
		syn, err := s.expander.Synonyms(ctx, tok)
		if err != nil {
			return nil, fmt.Errorf("expand token %q: %w", tok, err)
		}
		set.Union(syn)
	}
	return set, nil
}

// Match returns, in catalog order, the movies whose category contains any
// expanded query term. A query without tokens matches nothing.
func (s *Service) Match(ctx context.Context, query string, cat *catalog.Catalog) ([]movie.Movie, error) {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return []movie.Movie{}, nil
	}

	set, err := s.Expand(ctx, tokens)
	if err != nil {
		return nil, err
	}

	return cat.FilterCategory(ContainsAny(set.Slice())), nil
}

// ContainsAny returns a predicate reporting whether a lower-cased category
// contains any of the given terms.
func ContainsAny(candidates []string) func(category string) bool {
	return func(category string) bool {
		for _, t := range candidates {
			if strings.Contains(category, t) {
				return true
			}
		}
		return false
	}
}
