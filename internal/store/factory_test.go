package store_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombook/internal/config"
	"roombook/internal/store"
)

func TestNewStoreDefaultsToMemory(t *testing.T) {
	s, err := store.NewStore(config.StoreConfig{RedisEnabled: false})
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "rooms", []byte(`[]`)))

	data, err := s.Get(ctx, "rooms")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestNewStoreWithRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	s, err := store.NewStore(config.StoreConfig{
		RedisEnabled: true,
		Host:         mr.Host(),
		Port:         mr.Port(),
		KeyPrefix:    "test:",
	})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set(context.Background(), "rooms", []byte(`[]`)))
	assert.True(t, mr.Exists("test:rooms"))
}

func TestNewStoreRedisFailure(t *testing.T) {
	// No server listening here
	_, err := store.NewStore(config.StoreConfig{
		RedisEnabled: true,
		Host:         "127.0.0.1",
		Port:         "1",
	})
	assert.Error(t, err)
}
