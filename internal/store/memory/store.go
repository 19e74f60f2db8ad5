// Package memory provides an in-memory implementation of the store interface
package memory

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned when a requested key is not in the store
var ErrNotFound = errors.New("key not found")

// Store implements the store interface with in-memory storage
type Store struct {
	data     map[string][]byte
	watchers map[string]map[int]func()
	nextID   int
	mu       sync.RWMutex
}

// NewStore creates a new in-memory store
func NewStore() *Store {
	return &Store{
		data:     make(map[string][]byte),
		watchers: make(map[string]map[int]func()),
	}
}

// Get returns the serialized list stored under key
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}

	// Return a copy so callers cannot mutate the stored value
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Set stores the serialized list under key and notifies watchers of that key
func (s *Store) Set(ctx context.Context, key string, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)

	s.mu.Lock()
	s.data[key] = stored
	callbacks := make([]func(), 0, len(s.watchers[key]))
	for _, cb := range s.watchers[key] {
		callbacks = append(callbacks, cb)
	}
	s.mu.Unlock()

	// Fire outside the lock so a callback may read the store again
	for _, cb := range callbacks {
		cb()
	}

	return nil
}

// Watch registers a callback fired after every write to key
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

// Close is a no-op for the in-memory store
func (s *Store) Close() error {
	return nil
}
