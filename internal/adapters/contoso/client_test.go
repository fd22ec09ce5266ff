package contoso_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"contoso_suites/internal/adapters/contoso"
	httpserver "contoso_suites/internal/adapters/http_server"
	"contoso_suites/internal/domain"
)

func TestClient_GetHotels_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Hotels" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			// two transient failures
			w.WriteHeader(500)
		default:
			w.WriteHeader(200)
			_ = json.NewEncoder(w).Encode([]domain.Hotel{{HotelID: 123, HotelName: "Contoso"}})
		}
	}))
	defer ts.Close()

	cl, err := contoso.New(ts.URL, 100) // high RPS for tests
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got, err := cl.GetHotels(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].HotelID != 123 {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if atomic.LoadInt32(&hits) != 3 {
		t.Fatalf("expected 3 calls due to retries, got %d", hits)
	}
}

func TestClient_BadRequestAndNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/Hotels" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(400)
		_, _ = w.Write([]byte(`{"type":"about:blank","title":"Invalid min_date","status":400,"detail":"nope"}`))
	}))
	defer ts.Close()

	cl, err := contoso.New(ts.URL, 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := cl.GetHotels(ctx); !errors.Is(err, contoso.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	_, err = cl.GetBookingsForHotel(ctx, 1)
	if !errors.Is(err, contoso.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
	if err.Error() != "contoso: bad request: nope" {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestNew_RejectsBadBase(t *testing.T) {
	for _, base := range []string{"", "localhost:8080", "://"} {
		if _, err := contoso.New(base, 1); err == nil {
			t.Fatalf("expected error for %q", base)
		}
	}
}

// memProvider backs the real router for the end-to-end test.
type memProvider struct {
	bookings  []domain.Booking
	gotSince  time.Time
	sinceHits int
}

func (m *memProvider) GetHotels(ctx context.Context) ([]domain.Hotel, error) {
	return []domain.Hotel{{HotelID: 7, HotelName: "Contoso Suites Lakeside", City: "Seattle", Country: "USA"}}, nil
}
func (m *memProvider) GetBookingsForHotel(ctx context.Context, id int) ([]domain.Booking, error) {
	return m.bookings, nil
}
func (m *memProvider) GetBookingsByHotelAndMinimumDate(ctx context.Context, id int, since time.Time) ([]domain.Booking, error) {
	m.sinceHits++
	m.gotSince = since
	var out []domain.Booking
	for _, b := range m.bookings {
		if b.HotelID == id && !b.StayBeginDate.Before(since) {
			out = append(out, b)
		}
	}
	return out, nil
}

func TestClient_AgainstRouter(t *testing.T) {
	d := func(m time.Month) time.Time { return time.Date(2024, m, 1, 0, 0, 0, 0, time.UTC) }
	p := &memProvider{bookings: []domain.Booking{
		{BookingID: 1, HotelID: 7, StayBeginDate: d(1), StayEndDate: d(2), NumberOfGuests: 1},
		{BookingID: 2, HotelID: 7, StayBeginDate: d(6), StayEndDate: d(7), NumberOfGuests: 2},
	}}
	srv := httpserver.New(5 * time.Second)
	if err := srv.MountHandlers(httpserver.NewHandlers(p)); err != nil {
		t.Fatalf("mount: %v", err)
	}
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	cl, err := contoso.New(ts.URL+"/", 100)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctx := context.Background()

	hs, err := cl.GetHotels(ctx)
	if err != nil || len(hs) != 1 || hs[0].City != "Seattle" {
		t.Fatalf("hotels: %+v %v", hs, err)
	}
	all, err := cl.GetBookingsForHotel(ctx, 7)
	if err != nil || len(all) != 2 {
		t.Fatalf("bookings: %+v %v", all, err)
	}

	since := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	recent, err := cl.GetRecentBookingsForHotel(ctx, 7, since)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 1 || recent[0].BookingID != 2 || !recent[0].StayBeginDate.Equal(d(6)) {
		t.Fatalf("unexpected recent bookings: %+v", recent)
	}
	if p.sinceHits != 1 || !p.gotSince.Equal(since) {
		t.Fatalf("server saw min date %s (%d calls)", p.gotSince, p.sinceHits)
	}
}

func TestClient_RecentBookingsKeepsSubSecondMinDate(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer ts.Close()

	cl, err := contoso.New(ts.URL, 100)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	since := time.Date(2024, 3, 1, 10, 30, 0, 500_000_000, time.UTC)
	if _, err := cl.GetRecentBookingsForHotel(context.Background(), 7, since); err != nil {
		t.Fatalf("recent: %v", err)
	}
	if gotPath != "/Hotels/7/Bookings/2024-03-01T10:30:00.5Z" {
		t.Fatalf("unexpected path %s", gotPath)
	}
}
