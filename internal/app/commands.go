package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"contoso_suites/internal/domain"
)

// SeedService loads hotels and their bookings into the repository.
type SeedService struct {
	repo  domain.HotelRepository
	cache domain.Cache
	rl    *rate.Limiter
}

// NewSeedService throttles repository writes to rps per second; rps <= 0 means unthrottled.
// cache may be nil.
func NewSeedService(r domain.HotelRepository, cache domain.Cache, rps int) *SeedService {
	lim := rate.NewLimiter(rate.Inf, 0)
	if rps > 0 {
		lim = rate.NewLimiter(rate.Limit(rps), rps)
	}
	return &SeedService{repo: r, cache: cache, rl: lim}
}

// SeedHotel validates rec, upserts the hotel (parent first, for the bookings FK)
// and then its bookings, and finally evicts every cached read the write touched.
func (s *SeedService) SeedHotel(ctx context.Context, rec HotelRecord) error {
	h, err := mapHotel(rec)
	if err != nil {
		return err
	}
	bs, err := mapBookings(h.HotelID, rec.Bookings)
	if err != nil {
		return err
	}

	if err := s.rl.Wait(ctx); err != nil {
		return err
	}
	if err := s.repo.UpsertHotel(ctx, h); err != nil {
		return fmt.Errorf("upsert hotel %d: %w", h.HotelID, err)
	}

	if len(bs) > 0 {
		if err := s.rl.Wait(ctx); err != nil {
			return err
		}
		if err := s.repo.UpsertBookings(ctx, bs); err != nil {
			return fmt.Errorf("upsert bookings for hotel %d: %w", h.HotelID, err)
		}
	}

	s.invalidate(ctx, h.HotelID, len(bs) > 0)
	return nil
}

// invalidate evicts the hotel list and the hotel's booking lists. A booking
// upsert may move an existing booking id from another hotel, so writing
// bookings evicts every hotel's booking lists.
func (s *SeedService) invalidate(ctx context.Context, hotelID int, wroteBookings bool) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, hotelsKey); err != nil {
		log.Warn().Err(err).Msg("evict hotels failed")
	}
	if wroteBookings {
		if err := s.cache.DelPattern(ctx, bookingsPrefix+"*"); err != nil {
			log.Warn().Err(err).Msg("evict bookings failed")
		}
		return
	}
	if err := s.cache.Del(ctx, bookingsKey(hotelID)); err != nil {
		log.Warn().Err(err).Int("hotel_id", hotelID).Msg("evict bookings failed")
	}
	// date-filtered variants are keyed by their min date
	if err := s.cache.DelPattern(ctx, bookingsKey(hotelID)+":*"); err != nil {
		log.Warn().Err(err).Int("hotel_id", hotelID).Msg("evict filtered bookings failed")
	}
}
