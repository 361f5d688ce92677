package syncache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cinedex/internal/db"
	"github.com/kailas-cloud/cinedex/internal/domain"
	"github.com/kailas-cloud/cinedex/internal/domain/terms"
)

var cacheKeyPrefix = domain.KeyPrefix + "syn:"

// store is the consumer interface for the synonym cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedSource caches per-word synonym sets in a key-value store.
type CachedSource struct {
	inner      domain.SynonymSource
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
// A ttl <= 0 stores entries without expiry.
func New(
	inner domain.SynonymSource,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedSource {
	return &CachedSource{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Synonyms returns a cached set or asks the inner source and caches its answer.
// Store failures are logged and treated as misses.
func (c *CachedSource) Synonyms(ctx context.Context, word string) (terms.Set, error) {
	key := cacheKey(word)

	if set, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return set, nil
	}

	c.incCache("miss")

	set, err := c.inner.Synonyms(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("synonyms of %q: %w", word, err)
	}

	c.putToCache(ctx, key, set)
	return set, nil
}

func (c *CachedSource) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func cacheKey(word string) string {
	return cacheKeyPrefix + terms.Lower(word)
}

func (c *CachedSource) getFromCache(ctx context.Context, key string) (terms.Set, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached synonyms", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	if len(data) == 0 {
		return nil, false
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		c.logger.Warn("Failed to parse cached synonyms", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	return terms.New(items...), true
}

func (c *CachedSource) putToCache(ctx context.Context, key string, set terms.Set) {
	data, err := json.Marshal(set.Slice())
	if err != nil {
		c.logger.Warn("Failed to encode synonyms", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache synonyms", zap.String("key", key), zap.Error(err))
	}
}
