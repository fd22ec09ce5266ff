package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"contoso_suites/internal/domain"
)

const (
	hotelsKey      = "hotels"
	bookingsPrefix = "bookings:"
)

func bookingsKey(hotelID int) string { return fmt.Sprintf("%s%d", bookingsPrefix, hotelID) }

func bookingsSinceKey(hotelID int, minDate time.Time) string {
	return fmt.Sprintf("%s:%s", bookingsKey(hotelID), minDate.UTC().Format(time.RFC3339Nano))
}

// QueryService serves hotel and booking reads from the repository, with an
// optional cache in front. A nil cache disables caching.
type QueryService struct {
	repo     domain.HotelRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

var _ domain.DataAccess = (*QueryService)(nil)

func NewQueryService(r domain.HotelRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func (s *QueryService) GetHotels(ctx context.Context) ([]domain.Hotel, error) {
	return cached(ctx, s, hotelsKey, func() ([]domain.Hotel, error) {
		return s.repo.ListHotels(ctx)
	})
}

func (s *QueryService) GetBookingsForHotel(ctx context.Context, hotelID int) ([]domain.Booking, error) {
	return cached(ctx, s, bookingsKey(hotelID), func() ([]domain.Booking, error) {
		return s.repo.ListBookings(ctx, hotelID)
	})
}

func (s *QueryService) GetBookingsByHotelAndMinimumDate(ctx context.Context, hotelID int, minDate time.Time) ([]domain.Booking, error) {
	return cached(ctx, s, bookingsSinceKey(hotelID, minDate), func() ([]domain.Booking, error) {
		return s.repo.ListBookingsSince(ctx, hotelID, minDate)
	})
}

// cached is a read-through helper. Cache failures are logged and never fail the read.
func cached[T any](ctx context.Context, s *QueryService, key string, load func() ([]T, error)) ([]T, error) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return load()
	}

	var hit []T
	ok, err := s.cache.Get(ctx, key, &hit)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache get failed")
	}
	if ok && err == nil {
		if hit == nil {
			hit = []T{}
		}
		return hit, nil
	}

	items, err := load()
	if err != nil {
		return nil, err
	}

	// copy to avoid aliasing the repo's backing array
	out := make([]T, len(items))
	copy(out, items)

	if err := s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds())); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
	return out, nil
}
