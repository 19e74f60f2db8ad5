// Package store defines the persistent list store interface
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a requested key is absent from the store
var ErrNotFound = errors.New("key not found")

// Store is a persistent key-value store mapping a string key to a serialized
// list of records. Watch registers a callback fired after any write to the
// given key, so other open views can reload their cached copy; the signal is
// best-effort, carries no payload and guarantees no ordering relative to
// other writes. The returned stop function unregisters the callback.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
	Watch(key string, callback func()) (stop func())
	Close() error
}
