// Package service provides the room and booking managers over the store
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"roombook/internal/models"
	"roombook/internal/store"
)

// ErrNotFound is returned when a record key does not match any stored record
var ErrNotFound = errors.New("record not found")

// UpdateCallback is fired after any write to a service's collection,
// including writes made by another process sharing the store
type UpdateCallback func()

// RoomService manages the room list. Every mutation rewrites the complete
// list in the store; the later of two racing writes wins.
type RoomService struct {
	store           store.Store
	updateCallbacks []UpdateCallback
}

// NewRoomService creates a RoomService over the given store
func NewRoomService(st store.Store) *RoomService {
	s := &RoomService{store: st}
	st.Watch(models.StoreKeyRooms, s.notifyUpdate)
	return s
}

// RegisterUpdateCallback registers a callback fired when the room list changes
func (s *RoomService) RegisterUpdateCallback(callback UpdateCallback) {
	s.updateCallbacks = append(s.updateCallbacks, callback)
}

func (s *RoomService) notifyUpdate() {
	for _, callback := range s.updateCallbacks {
		callback()
	}
}

// List returns all rooms. A missing or malformed stored list yields an empty
// slice rather than an error.
func (s *RoomService) List(ctx context.Context) ([]models.Room, error) {
	return loadList[models.Room](ctx, s.store, models.StoreKeyRooms)
}

// Get returns the room with the given key
func (s *RoomService) Get(ctx context.Context, key string) (models.Room, error) {
	rooms, err := s.List(ctx)
	if err != nil {
		return models.Room{}, err
	}
	for _, r := range rooms {
		if r.Key == key {
			return r, nil
		}
	}
	return models.Room{}, ErrNotFound
}

// Add creates a room with a fresh key and appends it to the list
func (s *RoomService) Add(ctx context.Context, name, capacity string) (models.Room, error) {
	rooms, err := s.List(ctx)
	if err != nil {
		return models.Room{}, err
	}

	room := models.Room{
		Key:      models.NewKey(),
		Name:     name,
		Capacity: capacity,
	}
	rooms = append(rooms, room)

	if err := saveList(ctx, s.store, models.StoreKeyRooms, rooms); err != nil {
		return models.Room{}, err
	}
	return room, nil
}

// Update replaces every field of the room with the given key, leaving all
// other rooms untouched
func (s *RoomService) Update(ctx context.Context, key, name, capacity string) (models.Room, error) {
	rooms, err := s.List(ctx)
	if err != nil {
		return models.Room{}, err
	}

	for i, r := range rooms {
		if r.Key != key {
			continue
		}
		rooms[i] = models.Room{Key: key, Name: name, Capacity: capacity}
		if err := saveList(ctx, s.store, models.StoreKeyRooms, rooms); err != nil {
			return models.Room{}, err
		}
		return rooms[i], nil
	}

	return models.Room{}, ErrNotFound
}

// Delete removes the room with the given key. Bookings referencing the room
// are left untouched; their meetingType keeps pointing at the absent key.
func (s *RoomService) Delete(ctx context.Context, key string) error {
	rooms, err := s.List(ctx)
	if err != nil {
		return err
	}

	kept := rooms[:0]
	found := false
	for _, r := range rooms {
		if r.Key == key {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return ErrNotFound
	}

	return saveList(ctx, s.store, models.StoreKeyRooms, kept)
}

// loadList reads and decodes the list stored under key. An absent key or a
// value that fails to decode is treated as an empty collection.
func loadList[T any](ctx context.Context, st store.Store, key string) ([]T, error) {
	data, err := st.Get(ctx, key)
	if err != nil {
		return []T{}, nil
	}

	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		log.Printf("Ignoring malformed %s list: %v", key, err)
		return []T{}, nil
	}
	if list == nil {
		list = []T{}
	}
	return list, nil
}

// saveList encodes and writes the complete list under key
func saveList[T any](ctx context.Context, st store.Store, key string, list []T) error {
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return st.Set(ctx, key, data)
}
