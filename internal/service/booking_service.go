package service

import (
	"context"

	"roombook/internal/booking"
	"roombook/internal/models"
	"roombook/internal/store"
)

// BookingService manages the booking list. Submissions run through the
// booking validator against the current list before anything is written, so
// conflicts are caught even against records created in the same session.
type BookingService struct {
	store           store.Store
	updateCallbacks []UpdateCallback
}

// NewBookingService creates a BookingService over the given store
func NewBookingService(st store.Store) *BookingService {
	s := &BookingService{store: st}
	st.Watch(models.StoreKeyBookings, s.notifyUpdate)
	return s
}

// RegisterUpdateCallback registers a callback fired when the booking list changes
func (s *BookingService) RegisterUpdateCallback(callback UpdateCallback) {
	s.updateCallbacks = append(s.updateCallbacks, callback)
}

func (s *BookingService) notifyUpdate() {
	for _, callback := range s.updateCallbacks {
		callback()
	}
}

// List returns all bookings. A missing or malformed stored list yields an
// empty slice rather than an error.
func (s *BookingService) List(ctx context.Context) ([]models.Booking, error) {
	return loadList[models.Booking](ctx, s.store, models.StoreKeyBookings)
}

// Get returns the booking with the given key
func (s *BookingService) Get(ctx context.Context, key string) (models.Booking, error) {
	bookings, err := s.List(ctx)
	if err != nil {
		return models.Booking{}, err
	}
	for _, b := range bookings {
		if b.Key == key {
			return b, nil
		}
	}
	return models.Booking{}, ErrNotFound
}

// Submit validates a booking submission and persists it. An empty editingKey
// creates a new booking under a fresh key; otherwise the booking with that
// key is replaced in place. A validation failure aborts the submission
// without writing anything.
func (s *BookingService) Submit(ctx context.Context, sub booking.Submission, editingKey string) (models.Booking, error) {
	bookings, err := s.List(ctx)
	if err != nil {
		return models.Booking{}, err
	}

	validated, err := booking.ValidateSubmission(sub, bookings, editingKey)
	if err != nil {
		return models.Booking{}, err
	}

	if editingKey == "" {
		validated.Key = models.NewKey()
		bookings = append(bookings, validated)
	} else {
		found := false
		for i, b := range bookings {
			if b.Key == editingKey {
				validated.Key = editingKey
				bookings[i] = validated
				found = true
				break
			}
		}
		if !found {
			return models.Booking{}, ErrNotFound
		}
	}

	if err := saveList(ctx, s.store, models.StoreKeyBookings, bookings); err != nil {
		return models.Booking{}, err
	}
	return validated, nil
}

// Delete removes the booking with the given key
func (s *BookingService) Delete(ctx context.Context, key string) error {
	bookings, err := s.List(ctx)
	if err != nil {
		return err
	}

	kept := bookings[:0]
	found := false
	for _, b := range bookings {
		if b.Key == key {
			found = true
			continue
		}
		kept = append(kept, b)
	}
	if !found {
		return ErrNotFound
	}

	return saveList(ctx, s.store, models.StoreKeyBookings, kept)
}
