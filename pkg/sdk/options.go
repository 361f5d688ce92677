package cinedex

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	datasetPath string
	movies      []Movie
	hasMovies   bool

	thesaurusPath string
	sources       []SynonymSource

	cacheAddrs    []string
	cachePassword string
	cacheTTL      time.Duration

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithDataset loads the catalog from a CSV file with the Netflix titles layout.
func WithDataset(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.datasetPath = path
	})
}

// WithMovies uses the given movies as the catalog instead of a dataset file.
// An empty list is allowed and yields an empty catalog.
func WithMovies(movies ...Movie) Option {
	return optionFunc(func(c *clientConfig) {
		c.movies = movies
		c.hasMovies = true
	})
}

// WithThesaurus replaces the bundled thesaurus with a YAML file of synsets
// or a WordNet dict directory (data.* and *.exc files).
func WithThesaurus(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.thesaurusPath = path
	})
}

// WithSynonymSource adds a synonym provider queried after the thesaurus.
// Failing providers are skipped.
func WithSynonymSource(s SynonymSource) Option {
	return optionFunc(func(c *clientConfig) {
		c.sources = append(c.sources, s)
	})
}

// WithRedisCache caches per-word synonym sets in Redis.
// A ttl <= 0 keeps entries without expiry.
func WithRedisCache(addr, password string, ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.cacheAddrs = []string{addr}
		c.cachePassword = password
		c.cacheTTL = ttl
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
