package cinedex

import "context"

// Movie is one catalog record.
type Movie struct {
	ID       string
	Title    string
	Year     int
	Category string
	Rating   string
	Overview string
}

// Answer is the reply to a keyword search.
type Answer struct {
	Message string
	Movies  []Movie
}

// SynonymSource supplies alternate forms of a word in addition to the bundled thesaurus.
// Unknown words should yield an empty slice, not an error.
type SynonymSource interface {
	Name() string
	Synonyms(ctx context.Context, word string) ([]string, error)
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            // "ok", "degraded", "error"
	Checks map[string]string // component → "ok"/"error"
}
