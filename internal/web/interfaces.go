package web

import (
	"context"

	"roombook/internal/booking"
	"roombook/internal/models"
)

// RoomServicer defines the contract for the room manager used by web handlers
type RoomServicer interface {
	List(ctx context.Context) ([]models.Room, error)
	Get(ctx context.Context, key string) (models.Room, error)
	Add(ctx context.Context, name, capacity string) (models.Room, error)
	Update(ctx context.Context, key, name, capacity string) (models.Room, error)
	Delete(ctx context.Context, key string) error
}

// BookingServicer defines the contract for the booking manager used by web handlers
type BookingServicer interface {
	List(ctx context.Context) ([]models.Booking, error)
	Get(ctx context.Context, key string) (models.Booking, error)
	Submit(ctx context.Context, sub booking.Submission, editingKey string) (models.Booking, error)
	Delete(ctx context.Context, key string) error
}
