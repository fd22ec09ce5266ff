package domain

import "time"

type Hotel struct {
	HotelID   int    `json:"hotelID"`
	HotelName string `json:"hotelName"`
	City      string `json:"city"`
	Country   string `json:"country"`
}

type Booking struct {
	BookingID      int       `json:"bookingID"`
	CustomerID     int       `json:"customerID"`
	HotelID        int       `json:"hotelID"`
	StayBeginDate  time.Time `json:"stayBeginDate"`
	StayEndDate    time.Time `json:"stayEndDate"`
	NumberOfGuests int       `json:"numberOfGuests"`
}
