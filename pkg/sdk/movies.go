package cinedex

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/cinedex/internal/domain/movie"
)

// MovieService browses the catalog.
type MovieService struct {
	svc movieUseCase
	obs *observer
}

// All returns every movie in catalog order. ErrEmptyCatalog when nothing was loaded.
func (s *MovieService) All(ctx context.Context) (_ []Movie, err error) {
	start := time.Now()
	defer func() { s.obs.observe("movies.all", start, err) }()

	ms, err := s.svc.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return moviesFromDomain(ms), nil
}

// Get returns the movie with the given id. ErrNotFound when absent.
func (s *MovieService) Get(ctx context.Context, id string) (_ Movie, err error) {
	start := time.Now()
	defer func() { s.obs.observe("movies.get", start, err, "id", id) }()

	m, err := s.svc.Get(ctx, id)
	if err != nil {
		return Movie{}, fmt.Errorf("get movie: %w", err)
	}
	return movieFromDomain(m), nil
}

// ByCategory returns the movies whose category contains category, case-insensitively.
func (s *MovieService) ByCategory(ctx context.Context, category string) (_ []Movie, err error) {
	start := time.Now()
	defer func() { s.obs.observe("movies.by_category", start, err, "category", category) }()

	ms, err := s.svc.ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list movies by category: %w", err)
	}
	return moviesFromDomain(ms), nil
}

func movieFromDomain(m movie.Movie) Movie {
	return Movie{
		ID:       m.ID(),
		Title:    m.Title(),
		Year:     m.Year(),
		Category: m.Category(),
		Rating:   m.Rating(),
		Overview: m.Overview(),
	}
}

func moviesFromDomain(ms []movie.Movie) []Movie {
	out := make([]Movie, len(ms))
	for i, m := range ms {
		out[i] = movieFromDomain(m)
	}
	return out
}

func movieToDomain(m Movie) movie.Movie {
	return movie.New(m.ID, m.Title, m.Year, m.Category, m.Rating, m.Overview)
}
