package syncache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cinedex/internal/db"
	"github.com/kailas-cloud/cinedex/internal/domain/terms"
)

type mockSource struct {
	words map[string][]string
	err   error
	calls int
}

func (m *mockSource) Synonyms(_ context.Context, word string) (terms.Set, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return terms.New(m.words[word]...), nil
}

// mockKVStore implements the consumer interface for tests.
type mockKVStore struct {
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockKVStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value, ttl)
	}
	return nil
}

func newTestCachedSource(t *testing.T, inner *mockSource) (*CachedSource, *mockKVStore) {
	t.Helper()
	ms := &mockKVStore{}
	cs := New(inner, ms, time.Hour, nil, zap.NewNop())
	return cs, ms
}
