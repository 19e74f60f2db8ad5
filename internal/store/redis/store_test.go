// Package redis_test provides tests for the Redis store
package redis_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombook/internal/config"
	"roombook/internal/store/redis"
)

func setupTestRedis(t *testing.T) (*redis.Store, *miniredis.Miniredis, func()) {
	// Create a miniredis server
	mr, err := miniredis.Run()
	require.NoError(t, err)

	cfg := config.StoreConfig{
		RedisEnabled: true,
		Host:         mr.Host(),
		Port:         mr.Port(),
		DB:           0,
		KeyPrefix:    "test:",
	}

	s, err := redis.NewStore(cfg)
	require.NoError(t, err)

	cleanup := func() {
		s.Close()
		mr.Close()
	}

	return s, mr, cleanup
}

// TestRedisWithURI tests connection with URI format
func TestRedisWithURI(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	uri := fmt.Sprintf("redis://%s:%s", mr.Host(), mr.Port())
	cfg := config.StoreConfig{
		RedisEnabled: true,
		URI:          uri,
		KeyPrefix:    "test:",
	}

	s, err := redis.NewStore(cfg)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "rooms", []byte(`[]`)))

	data, err := s.Get(ctx, "rooms")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestRedisStore(t *testing.T) {
	s, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("MissingKey", func(t *testing.T) {
		_, err := s.Get(ctx, "bookings")
		assert.ErrorIs(t, err, redis.ErrNotFound)
	})

	t.Run("SetAndGet", func(t *testing.T) {
		err := s.Set(ctx, "bookings", []byte(`[{"key":"b1"}]`))
		assert.NoError(t, err)

		data, err := s.Get(ctx, "bookings")
		assert.NoError(t, err)
		assert.JSONEq(t, `[{"key":"b1"}]`, string(data))
	})

	t.Run("KeysArePrefixed", func(t *testing.T) {
		assert.True(t, mr.Exists("test:bookings"))
	})
}

func TestRedisStoreWatch(t *testing.T) {
	s, _, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("LocalWriteFiresWatcher", func(t *testing.T) {
		events := 0
		stop := s.Watch("rooms", func() { events++ })
		defer stop()

		require.NoError(t, s.Set(ctx, "rooms", []byte(`[]`)))
		assert.Equal(t, 1, events)
	})

	t.Run("StoppedWatcherIsSilent", func(t *testing.T) {
		events := 0
		stop := s.Watch("rooms", func() { events++ })
		stop()

		require.NoError(t, s.Set(ctx, "rooms", []byte(`[]`)))
		assert.Equal(t, 0, events)
	})
}

// TestCrossInstanceWatch verifies that a write through one store instance
// reaches watchers registered on another instance of the same backing Redis
func TestCrossInstanceWatch(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cfg := config.StoreConfig{
		RedisEnabled: true,
		Host:         mr.Host(),
		Port:         mr.Port(),
		KeyPrefix:    "test:",
	}

	writer, err := redis.NewStore(cfg)
	require.NoError(t, err)
	defer writer.Close()

	reader, err := redis.NewStore(cfg)
	require.NoError(t, err)
	defer reader.Close()

	notified := make(chan struct{}, 1)
	stop := reader.Watch("rooms", func() {
		select {
		case notified <- struct{}{}:
		default:
		}
	})
	defer stop()

	require.NoError(t, writer.Set(context.Background(), "rooms", []byte(`[]`)))

	select {
	case <-notified:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher on second instance was not notified")
	}
}
