// Package store provides the initialization for store implementations
package store

import (
	"log"

	"roombook/internal/config"
	"roombook/internal/store/memory"
	"roombook/internal/store/redis"
)

// Constructor hooks, swappable in tests
var (
	newRedisStore  func(cfg config.StoreConfig) (Store, error)
	newMemoryStore func() Store
)

// init registers the actual store implementations
func init() {
	newRedisStore = func(cfg config.StoreConfig) (Store, error) {
		return redis.NewStore(cfg)
	}

	newMemoryStore = func() Store {
		return memory.NewStore()
	}
}

// NewStore creates a store based on the given configuration, falling back to
// the in-memory implementation when Redis is not enabled.
func NewStore(cfg config.StoreConfig) (Store, error) {
	if cfg.RedisEnabled {
		s, err := newRedisStore(cfg)
		if err != nil {
			return nil, err
		}
		log.Println("Using Redis store")
		return s, nil
	}

	log.Println("Using in-memory store")
	return newMemoryStore(), nil
}
