package redis

import (
	"context"
	"time"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/cinedex/internal/db"
)

// Get retrieves a value by key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	cmd := s.b().Get().Key(key).Build()
	data, err := s.do(ctx, cmd).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, db.ErrKeyNotFound
		}
		return nil, &db.Error{Op: db.OpGet, Err: err}
	}
	return data, nil
}

// Set stores a value at the given key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	cmd := s.b().Set().Key(key).Value(string(value)).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpSet, Err: err}
	}
	return nil
}

// SetWithTTL stores a value with an expiration. A non-positive ttl stores without expiry.
func (s *Store) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return s.Set(ctx, key, value)
	}
	cmd := s.b().Set().Key(key).Value(string(value)).Ex(ttl).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpSet, Err: err}
	}
	return nil
}
