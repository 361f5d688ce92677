package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/rueidis/mock"
	"go.uber.org/mock/gomock"

	"github.com/kailas-cloud/cinedex/internal/db"
)

// --- client.go tests ---

func TestNewStore_NoAddrs(t *testing.T) {
	if _, err := NewStore(Config{}); err == nil {
		t.Fatal("expected error without addrs")
	}
}

func TestPing_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("PING")).
		Return(mock.Result(mock.RedisString("PONG")))

	s := NewStoreForTest(c)
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPing_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("PING")).
		Return(mock.ErrorResult(context.DeadlineExceeded))

	s := NewStoreForTest(c)
	err := s.Ping(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !isDBError(err) {
		t.Errorf("expected db.Error, got %T", err)
	}
}

// --- kv.go tests ---

func TestGet_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("GET", "mykey")).
		Return(mock.Result(mock.RedisBlobString("value")))

	s := NewStoreForTest(c)
	data, err := s.Get(context.Background(), "mykey")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "value" {
		t.Errorf("unexpected data: %s", data)
	}
}

func TestGet_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("GET", "mykey")).
		Return(mock.Result(mock.RedisNil()))

	s := NewStoreForTest(c)
	_, err := s.Get(context.Background(), "mykey")
	if !errors.Is(err, db.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestGet_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("GET", "mykey")).
		Return(mock.ErrorResult(context.DeadlineExceeded))

	s := NewStoreForTest(c)
	_, err := s.Get(context.Background(), "mykey")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, db.ErrKeyNotFound) {
		t.Error("should not be ErrKeyNotFound for network errors")
	}
	if !isDBError(err) {
		t.Errorf("expected db.Error, got %T", err)
	}
}

func TestSet_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("SET", "mykey", "myvalue")).
		Return(mock.Result(mock.RedisString("OK")))

	s := NewStoreForTest(c)
	if err := s.Set(context.Background(), "mykey", []byte("myvalue")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetWithTTL_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			if len(cmd) < 4 || cmd[0] != "SET" || cmd[1] != "mykey" || cmd[2] != "myvalue" {
				return false
			}
			for _, arg := range cmd[3:] {
				if arg == "EX" {
					return true
				}
			}
			return false
		})).
		Return(mock.Result(mock.RedisString("OK")))

	s := NewStoreForTest(c)
	if err := s.SetWithTTL(context.Background(), "mykey", []byte("myvalue"), time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetWithTTL_ZeroFallsBackToSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("SET", "mykey", "myvalue")).
		Return(mock.Result(mock.RedisString("OK")))

	s := NewStoreForTest(c)
	if err := s.SetWithTTL(context.Background(), "mykey", []byte("myvalue"), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSet_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("SET", "mykey", "myvalue")).
		Return(mock.ErrorResult(context.DeadlineExceeded))

	s := NewStoreForTest(c)
	err := s.Set(context.Background(), "mykey", []byte("myvalue"))
	if !isDBError(err) {
		t.Errorf("expected db.Error, got %v", err)
	}
}

func isDBError(err error) bool {
	var dbErr *db.Error
	return errors.As(err, &dbErr)
}
