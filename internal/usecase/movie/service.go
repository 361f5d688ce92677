package movie

import (
	"context"
	"fmt"
	"strings"

	"github.com/kailas-cloud/cinedex/internal/domain"
	"github.com/kailas-cloud/cinedex/internal/domain/catalog"
	"github.com/kailas-cloud/cinedex/internal/domain/movie"
	"github.com/kailas-cloud/cinedex/internal/domain/terms"
)

// Chatbot replies.
const (
	MessageFound    = "Aquí tienes algunas películas relacionadas."
	MessageNotFound = "No encontré películas en esa categoría."
)

// Answer is the result of a keyword search.
type Answer struct {
	Message string
	Results []movie.Movie
}

// Service is the read-only facade over the loaded catalog.
type Service struct {
	catalog *catalog.Catalog
	matcher Matcher
}

// New creates a movie service over an already loaded catalog.
func New(cat *catalog.Catalog, matcher Matcher) *Service {
	return &Service{catalog: cat, matcher: matcher}
}

// Len returns the number of loaded movies.
func (s *Service) Len() int { return s.catalog.Len() }

// ListAll returns every movie in catalog order.
func (s *Service) ListAll(_ context.Context) ([]movie.Movie, error) {
	if s.catalog.Len() == 0 {
		return nil, domain.ErrEmptyCatalog
	}
	return s.catalog.All(), nil
}

// Get returns the movie with the given id.
func (s *Service) Get(_ context.Context, id string) (movie.Movie, error) {
	m, ok := s.catalog.Get(id)
	if !ok {
		return movie.Movie{}, fmt.Errorf("get movie %q: %w", id, domain.ErrNotFound)
	}
	return m, nil
}

// ListByCategory returns the movies whose category contains category,
// case-insensitively. No match yields an empty slice.
func (s *Service) ListByCategory(_ context.Context, category string) ([]movie.Movie, error) {
	needle := terms.Lower(category)
	return s.catalog.FilterCategory(func(c string) bool {
		return strings.Contains(c, needle)
	}), nil
}

// Search matches a free-text query against movie categories.
func (s *Service) Search(ctx context.Context, query string) (Answer, error) {
	results, err := s.matcher.Match(ctx, query, s.catalog)
	if err != nil {
		return Answer{}, fmt.Errorf("search movies: %w", err)
	}

	msg := MessageNotFound
	if len(results) > 0 {
		msg = MessageFound
	}
	return Answer{Message: msg, Results: results}, nil
}
