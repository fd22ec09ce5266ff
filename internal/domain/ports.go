package domain

import (
	"context"
	"time"
)

// DataAccess is what the HTTP layer reads hotels and bookings through.
type DataAccess interface {
	GetHotels(ctx context.Context) ([]Hotel, error)
	GetBookingsForHotel(ctx context.Context, hotelID int) ([]Booking, error)
	GetBookingsByHotelAndMinimumDate(ctx context.Context, hotelID int, minDate time.Time) ([]Booking, error)
}

type HotelRepository interface {
	// Write paths (seeder only)
	UpsertHotel(ctx context.Context, h Hotel) error
	UpsertBookings(ctx context.Context, bs []Booking) error

	// Read paths
	ListHotels(ctx context.Context) ([]Hotel, error)
	ListBookings(ctx context.Context, hotelID int) ([]Booking, error)
	ListBookingsSince(ctx context.Context, hotelID int, minDate time.Time) ([]Booking, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
	DelPattern(ctx context.Context, pattern string) error
}
