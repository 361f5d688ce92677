// Package catalog holds the immutable, ordered movie collection shared by all requests.
package catalog

import (
	"github.com/kailas-cloud/cinedex/internal/domain/movie"
	"github.com/kailas-cloud/cinedex/internal/domain/terms"
)

// Catalog is an ordered, read-only sequence of movies.
// It is safe for concurrent use because it is never mutated after New.
type Catalog struct {
	movies     []movie.Movie
	categories []string // lower-cased category per movie, same order
	byID       map[string]int
}

// New builds a Catalog from movies, keeping their order.
// When ids repeat, lookups resolve to the first occurrence.
func New(movies []movie.Movie) *Catalog {
	c := &Catalog{
		movies:     make([]movie.Movie, len(movies)),
		categories: make([]string, len(movies)),
		byID:       make(map[string]int, len(movies)),
	}
	copy(c.movies, movies)
	for i, m := range c.movies {
		c.categories[i] = terms.Lower(m.Category())
		if _, dup := c.byID[m.ID()]; !dup {
			c.byID[m.ID()] = i
		}
	}
	return c
}

// Len returns the number of movies.
func (c *Catalog) Len() int { return len(c.movies) }

// All returns a copy of every movie in catalog order.
func (c *Catalog) All() []movie.Movie {
	out := make([]movie.Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

// Get returns the first movie with the given id.
func (c *Catalog) Get(id string) (movie.Movie, bool) {
	i, ok := c.byID[id]
	if !ok {
		return movie.Movie{}, false
	}
	return c.movies[i], true
}

// FilterCategory returns, in catalog order, the movies whose lower-cased
// category satisfies keep. The result is never nil.
func (c *Catalog) FilterCategory(keep func(category string) bool) []movie.Movie {
	out := make([]movie.Movie, 0)
	for i, cat := range c.categories {
		if keep(cat) {
			out = append(out, c.movies[i])
		}
	}
	return out
}
