package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// stubRedis implements redisCmdable over a plain map so the store logic can
// be exercised without a server.
type stubRedis struct {
	data map[string][]byte
}

func newStubRedis() *stubRedis {
	return &stubRedis{data: make(map[string][]byte)}
}

func (s *stubRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	value, ok := s.data[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(string(value))
	return cmd
}

func (s *stubRedis) Set(ctx context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	raw, ok := value.([]byte)
	if !ok {
		cmd.SetErr(redis.ErrClosed)
		return cmd
	}
	s.data[key] = raw
	cmd.SetVal("OK")
	return cmd
}

func (s *stubRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	var removed int64
	for _, key := range keys {
		if _, ok := s.data[key]; ok {
			delete(s.data, key)
			removed++
		}
	}
	cmd.SetVal(removed)
	return cmd
}

func (s *stubRedis) Ping(ctx context.Context) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	cmd.SetVal("PONG")
	return cmd
}

func TestRedisStorePrefixesKeys(t *testing.T) {
	stub := newStubRedis()
	store := &RedisStore{client: stub}
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "all_properties", []byte("v"), time.Hour))

	_, ok := stub.data["oakfield:all_properties"]
	require.True(t, ok, "keys must carry the application prefix")

	value, found, err := store.Get(ctx, "all_properties")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte("v"), value)
}

func TestRedisStoreMissingKeyIsNotAnError(t *testing.T) {
	store := &RedisStore{client: newStubRedis()}

	_, ok, err := store.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisStoreDeleteIgnoresMissingKeys(t *testing.T) {
	stub := newStubRedis()
	store := &RedisStore{client: stub}
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Hour))
	require.NoError(t, store.Delete(ctx, "k"))
	require.NoError(t, store.Delete(ctx, "k"))
	require.Empty(t, stub.data)
}

func TestNewRedisStoreRequiresAddress(t *testing.T) {
	_, err := NewRedisStore(RedisConfig{})
	require.Error(t, err)
}
