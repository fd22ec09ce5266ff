package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"contoso_suites/internal/adapters/observability"
	"contoso_suites/internal/domain"
)

type hotelRow struct {
	ID      int    `db:"id"`
	Name    string `db:"name"`
	City    string `db:"city"`
	Country string `db:"country"`
}

type bookingRow struct {
	ID             int       `db:"id"`
	CustomerID     int       `db:"customer_id"`
	HotelID        int       `db:"hotel_id"`
	StayBeginDate  time.Time `db:"stay_begin_date"`
	StayEndDate    time.Time `db:"stay_end_date"`
	NumberOfGuests int       `db:"number_of_guests"`
}

func (r hotelRow) toDomain() domain.Hotel {
	return domain.Hotel{HotelID: r.ID, HotelName: r.Name, City: r.City, Country: r.Country}
}

func (r bookingRow) toDomain() domain.Booking {
	return domain.Booking{
		BookingID:      r.ID,
		CustomerID:     r.CustomerID,
		HotelID:        r.HotelID,
		StayBeginDate:  r.StayBeginDate.UTC(),
		StayEndDate:    r.StayEndDate.UTC(),
		NumberOfGuests: r.NumberOfGuests,
	}
}

func fromBooking(b domain.Booking) bookingRow {
	return bookingRow{
		ID:             b.BookingID,
		CustomerID:     b.CustomerID,
		HotelID:        b.HotelID,
		StayBeginDate:  b.StayBeginDate.UTC(),
		StayEndDate:    b.StayEndDate.UTC(),
		NumberOfGuests: b.NumberOfGuests,
	}
}

type Repo struct{ db *sqlx.DB }

// New wraps an open go-sql-driver/mysql handle. The DSN must set parseTime=true.
func New(db *sql.DB) *Repo { return &Repo{db: sqlx.NewDb(db, "mysql")} }

func (r *Repo) UpsertHotel(ctx context.Context, h domain.Hotel) error {
	start := time.Now()
	_, err := r.db.NamedExecContext(ctx, upsertHotelSQL, hotelRow{
		ID: h.HotelID, Name: h.HotelName, City: h.City, Country: h.Country,
	})
	observability.ObserveDB("upsert_hotel", err, time.Since(start))
	return err
}

// UpsertBookings writes all rows in one transaction; any failure rolls the batch back.
func (r *Repo) UpsertBookings(ctx context.Context, bs []domain.Booking) (err error) {
	if len(bs) == 0 {
		return nil
	}
	start := time.Now()
	defer func() { observability.ObserveDB("upsert_bookings", err, time.Since(start)) }()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	for _, b := range bs {
		if _, err = tx.NamedExecContext(ctx, upsertBookingsSQL, fromBooking(b)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("upsert booking %d: %w", b.BookingID, err)
		}
	}
	return tx.Commit()
}

func (r *Repo) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	start := time.Now()
	var rows []hotelRow
	err := r.db.SelectContext(ctx, &rows, listHotelsSQL)
	observability.ObserveDB("list_hotels", err, time.Since(start))
	if err != nil {
		return nil, err
	}
	out := make([]domain.Hotel, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *Repo) ListBookings(ctx context.Context, hotelID int) ([]domain.Booking, error) {
	return r.selectBookings(ctx, "list_bookings", listBookingsSQL, hotelID)
}

func (r *Repo) ListBookingsSince(ctx context.Context, hotelID int, minDate time.Time) ([]domain.Booking, error) {
	return r.selectBookings(ctx, "list_bookings_since", listBookingsSinceSQL, hotelID, minDate.UTC())
}

func (r *Repo) selectBookings(ctx context.Context, name, query string, args ...any) ([]domain.Booking, error) {
	start := time.Now()
	var rows []bookingRow
	err := r.db.SelectContext(ctx, &rows, query, args...)
	observability.ObserveDB(name, err, time.Since(start))
	if err != nil {
		return nil, err
	}
	out := make([]domain.Booking, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
