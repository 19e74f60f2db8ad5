// Package redis provides a Redis/Valkey implementation of the store interface
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"roombook/internal/config"
)

// ErrNotFound is returned when a requested key is not in the store
var ErrNotFound = errors.New("key not found")

// changeEvent is published after every write so other processes holding the
// same store can refresh. Origin identifies the writing store instance; a
// store skips its own events because local watchers are fired directly.
type changeEvent struct {
	Key    string `json:"key"`
	Origin string `json:"origin"`
}

// Store implements the store interface with Redis storage
type Store struct {
	client    *redis.Client
	keyPrefix string
	origin    string
	pubsub    *redis.PubSub
	cancel    context.CancelFunc

	watchers map[string]map[int]func()
	nextID   int
	mu       sync.RWMutex
}

// NewStore creates a new Redis store
func NewStore(cfg config.StoreConfig) (*Store, error) {
	var client *redis.Client

	// Use URI if provided, otherwise build connection from individual parameters
	if cfg.URI != "" {
		opt, err := redis.ParseURL(cfg.URI)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URI: %w", err)
		}

		if opt.DB == 0 {
			opt.DB = cfg.DB
		}
		if opt.Password == "" && cfg.Password != "" {
			opt.Password = cfg.Password
		}

		client = redis.NewClient(opt)
	} else {
		address := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)

		client = redis.NewClient(&redis.Options{
			Addr:     address,
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	s := &Store{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
		origin:    uuid.NewString(),
		watchers:  make(map[string]map[int]func()),
	}

	subCtx, subCancel := context.WithCancel(context.Background())
	s.cancel = subCancel
	s.pubsub = client.Subscribe(subCtx, s.changeChannel())
	go s.listen(subCtx)

	return s, nil
}

// Close stops the change subscription and closes the Redis connection
func (s *Store) Close() error {
	s.cancel()
	if err := s.pubsub.Close(); err != nil {
		log.Printf("Error closing store subscription: %v", err)
	}
	return s.client.Close()
}

// storeKey returns the Redis key for a list key
func (s *Store) storeKey(key string) string {
	return s.keyPrefix + key
}

// changeChannel returns the pub/sub channel carrying change events
func (s *Store) changeChannel() string {
	return s.keyPrefix + "changes"
}

// Get returns the serialized list stored under key
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.storeKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return data, nil
}

// Set stores the serialized list under key, notifies local watchers and
// publishes a change event for other processes. Lists are stored without
// expiry; they live until overwritten or deleted.
func (s *Store) Set(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, s.storeKey(key), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	payload, err := json.Marshal(changeEvent{Key: key, Origin: s.origin})
	if err == nil {
		if err := s.client.Publish(ctx, s.changeChannel(), payload).Err(); err != nil {
			// Best-effort signal; the write itself succeeded
			log.Printf("Error publishing change event for %s: %v", key, err)
		}
	}

	s.dispatch(key)
	return nil
}

// Watch registers a callback fired after every write to key, whether the
// write happened through this store instance or another process
func (s *Store) Watch(key string, callback func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watchers[key] == nil {
		s.watchers[key] = make(map[int]func())
	}
	id := s.nextID
	s.nextID++
	s.watchers[key][id] = callback

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.watchers[key], id)
	}
}

// listen dispatches change events published by other store instances
func (s *Store) listen(ctx context.Context) {
	ch := s.pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}

			var event changeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("Ignoring malformed change event: %v", err)
				continue
			}

			// Local watchers were already fired by Set
			if event.Origin == s.origin {
				continue
			}

			s.dispatch(event.Key)
		}
	}
}

// dispatch fires the callbacks watching key
func (s *Store) dispatch(key string) {
	s.mu.RLock()
	callbacks := make([]func(), 0, len(s.watchers[key]))
	for _, cb := range s.watchers[key] {
		callbacks = append(callbacks, cb)
	}
	s.mu.RUnlock()

	for _, cb := range callbacks {
		cb()
	}
}
