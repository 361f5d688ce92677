package cinedex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	dbRedis "github.com/kailas-cloud/cinedex/internal/db/redis"
	"github.com/kailas-cloud/cinedex/internal/domain/catalog"
	"github.com/kailas-cloud/cinedex/internal/domain/movie"
	catalogrepo "github.com/kailas-cloud/cinedex/internal/repository/catalog"
	"github.com/kailas-cloud/cinedex/internal/repository/syncache"
	"github.com/kailas-cloud/cinedex/internal/repository/thesaurus"
	healthuc "github.com/kailas-cloud/cinedex/internal/usecase/health"
	movieuc "github.com/kailas-cloud/cinedex/internal/usecase/movie"
	searchuc "github.com/kailas-cloud/cinedex/internal/usecase/search"
	synonymuc "github.com/kailas-cloud/cinedex/internal/usecase/synonym"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces, swapped out in tests.
type movieUseCase interface {
	ListAll(ctx context.Context) ([]movie.Movie, error)
	Get(ctx context.Context, id string) (movie.Movie, error)
	ListByCategory(ctx context.Context, category string) ([]movie.Movie, error)
	Search(ctx context.Context, query string) (movieuc.Answer, error)
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the cinedex SDK entry point.
type Client struct {
	cache     *dbRedis.Store
	movieSvc  movieUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New loads the catalog and wires the search pipeline.
// The provided context bounds the dataset load and the cache readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.datasetPath == "" && !cfg.hasMovies {
		return nil, errors.New("cinedex: catalog required (use WithDataset or WithMovies)")
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	cat, err := loadCatalog(ctx, cfg)
	obs.observe("catalog.load", start, err)
	if err != nil {
		return nil, err
	}

	th, err := loadThesaurus(cfg.thesaurusPath)
	if err != nil {
		return nil, fmt.Errorf("cinedex: load thesaurus: %w", err)
	}

	var cache *dbRedis.Store
	if len(cfg.cacheAddrs) > 0 {
		cache, err = connectCache(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	return wireClient(cat, th, cache, cfg, obs), nil
}

func loadCatalog(ctx context.Context, cfg *clientConfig) (*catalog.Catalog, error) {
	if cfg.hasMovies {
		movies := make([]movie.Movie, len(cfg.movies))
		for i, m := range cfg.movies {
			movies[i] = movieToDomain(m)
		}
		return catalog.New(movies), nil
	}

	movies, err := catalogrepo.New(cfg.datasetPath).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cinedex: load dataset: %w", err)
	}
	return catalog.New(movies), nil
}

func loadThesaurus(path string) (*thesaurus.Thesaurus, error) {
	if path == "" {
		return thesaurus.Default()
	}
	return thesaurus.Load(path)
}

func connectCache(ctx context.Context, cfg *clientConfig) (*dbRedis.Store, error) {
	s, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.cacheAddrs,
		Password: cfg.cachePassword,
	})
	if err != nil {
		return nil, fmt.Errorf("cinedex: create redis store: %w", err)
	}
	if err := s.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		s.Close()
		return nil, fmt.Errorf("cinedex: cache not ready: %w", err)
	}
	return s, nil
}

func wireClient(
	cat *catalog.Catalog, th *thesaurus.Thesaurus, cache *dbRedis.Store, cfg *clientConfig, obs *observer,
) *Client {
	sources := []synonymuc.Source{th}
	for _, s := range cfg.sources {
		sources = append(sources, &sourceAdapter{inner: s})
	}

	var expander searchuc.Expander = synonymuc.New(zap.NewNop(), sources...)

	// Pass nil interface (not typed nil pointer) when the cache is disabled.
	var cachePinger healthuc.CachePinger
	if cache != nil {
		expander = syncache.New(expander, cache, cfg.cacheTTL, nil, zap.NewNop())
		cachePinger = cache
	}

	return &Client{
		cache:     cache,
		movieSvc:  movieuc.New(cat, searchuc.New(expander)),
		healthSvc: healthuc.New(cat, cachePinger, nil),
		obs:       obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.cache != nil {
		c.cache.Close()
	}
}

// Movies returns the catalog browsing service.
func (c *Client) Movies() *MovieService {
	return &MovieService{svc: c.movieSvc, obs: c.obs}
}

// Chatbot runs a keyword search over movie categories, expanding the query with synonyms.
func (c *Client) Chatbot(ctx context.Context, query string) (_ Answer, err error) {
	start := time.Now()
	var n int
	defer func() { c.obs.observe("chatbot", start, err, "results", n) }()

	a, err := c.movieSvc.Search(ctx, query)
	if err != nil {
		return Answer{}, fmt.Errorf("chatbot: %w", err)
	}
	n = len(a.Results)
	return Answer{Message: a.Message, Movies: moviesFromDomain(a.Results)}, nil
}

// Health checks the health of all system components.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status: string(report.Status),
		Checks: checks,
	}
}
