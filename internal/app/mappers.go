package app

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"contoso_suites/internal/domain"
	"contoso_suites/internal/shared"
)

/********** seed file shape **********/

type SeedFile struct {
	Hotels []HotelRecord `yaml:"hotels"`
}

type HotelRecord struct {
	ID       int             `yaml:"id"`
	Name     string          `yaml:"name"`
	City     string          `yaml:"city"`
	Country  string          `yaml:"country"`
	Bookings []BookingRecord `yaml:"bookings"`
}

// Dates stay strings so they go through the same ISO-8601 parser as the API.
type BookingRecord struct {
	ID            int    `yaml:"id"`
	CustomerID    int    `yaml:"customer_id"`
	StayBeginDate string `yaml:"stay_begin_date"`
	StayEndDate   string `yaml:"stay_end_date"`
	Guests        int    `yaml:"number_of_guests"`
}

// LoadSeedFile reads and decodes a YAML dataset. Unknown keys are rejected.
func LoadSeedFile(path string) (SeedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return SeedFile{}, err
	}
	defer f.Close()

	var sf SeedFile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil {
		return SeedFile{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return sf, nil
}

/********** record mappers **********/

func mapHotel(rec HotelRecord) (domain.Hotel, error) {
	if rec.ID <= 0 {
		return domain.Hotel{}, fmt.Errorf("%w: hotel id must be positive, got %d", domain.ErrInvalidInput, rec.ID)
	}
	name := strings.TrimSpace(rec.Name)
	if name == "" {
		return domain.Hotel{}, fmt.Errorf("%w: hotel %d has no name", domain.ErrInvalidInput, rec.ID)
	}
	return domain.Hotel{
		HotelID:   rec.ID,
		HotelName: name,
		City:      strings.TrimSpace(rec.City),
		Country:   strings.TrimSpace(rec.Country),
	}, nil
}

func mapBookings(hotelID int, in []BookingRecord) ([]domain.Booking, error) {
	out := make([]domain.Booking, 0, len(in))
	for _, r := range in {
		if r.ID <= 0 {
			return nil, fmt.Errorf("%w: hotel %d: booking id must be positive, got %d", domain.ErrInvalidInput, hotelID, r.ID)
		}
		begin, err := shared.ParseDateTime(r.StayBeginDate)
		if err != nil {
			return nil, fmt.Errorf("%w: booking %d: stay_begin_date: %v", domain.ErrInvalidInput, r.ID, err)
		}
		end, err := shared.ParseDateTime(r.StayEndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: booking %d: stay_end_date: %v", domain.ErrInvalidInput, r.ID, err)
		}
		if end.Before(begin) {
			return nil, fmt.Errorf("%w: booking %d ends before it begins", domain.ErrInvalidInput, r.ID)
		}
		if r.Guests <= 0 {
			return nil, fmt.Errorf("%w: booking %d: number_of_guests must be positive", domain.ErrInvalidInput, r.ID)
		}
		out = append(out, domain.Booking{
			BookingID:      r.ID,
			CustomerID:     r.CustomerID,
			HotelID:        hotelID,
			StayBeginDate:  begin,
			StayEndDate:    end,
			NumberOfGuests: r.Guests,
		})
	}
	return out, nil
}
