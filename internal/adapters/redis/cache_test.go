package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "contoso_suites/internal/adapters/redis"
	"contoso_suites/internal/domain"
)

func newCache(t *testing.T) (*redisad.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCache_SetGetRoundTrip(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	if err := c.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}

	var miss []domain.Hotel
	ok, err := c.Get(ctx, "hotels", &miss)
	if err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	in := []domain.Booking{{
		BookingID: 2, CustomerID: 5, HotelID: 7,
		StayBeginDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		StayEndDate:    time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		NumberOfGuests: 2,
	}}
	if err := c.Set(ctx, "bookings:7", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	if ttl := mr.TTL("bookings:7"); ttl != 60*time.Second {
		t.Fatalf("ttl: %s", ttl)
	}

	var out []domain.Booking
	ok, err = c.Get(ctx, "bookings:7", &out)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if len(out) != 1 || out[0].BookingID != 2 || !out[0].StayBeginDate.Equal(in[0].StayBeginDate) {
		t.Fatalf("unexpected cached value: %+v", out)
	}

	mr.FastForward(61 * time.Second)
	ok, _ = c.Get(ctx, "bookings:7", &out)
	if ok {
		t.Fatalf("expected expiry")
	}
}

func TestCache_DelPattern(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	for _, k := range []string{"bookings:7", "bookings:7:2024-01-01T00:00:00Z", "bookings:7:2024-03-01T00:00:00Z", "bookings:8", "hotels"} {
		if err := c.Set(ctx, k, []int{1}, 60); err != nil {
			t.Fatalf("set %s: %v", k, err)
		}
	}

	if err := c.DelPattern(ctx, "bookings:7:*"); err != nil {
		t.Fatalf("del pattern: %v", err)
	}
	if err := c.Del(ctx, "hotels"); err != nil {
		t.Fatalf("del: %v", err)
	}
	// no match is not an error
	if err := c.DelPattern(ctx, "nothing:*"); err != nil {
		t.Fatalf("del empty pattern: %v", err)
	}

	for k, want := range map[string]bool{
		"bookings:7":                      true,
		"bookings:8":                      true,
		"bookings:7:2024-01-01T00:00:00Z": false,
		"bookings:7:2024-03-01T00:00:00Z": false,
		"hotels":                          false,
	} {
		if got := mr.Exists(k); got != want {
			t.Fatalf("%s exists=%v want %v", k, got, want)
		}
	}
}
