package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contoso_suites/internal/domain"
)

func TestRender(t *testing.T) {
	hotels := []domain.Hotel{{HotelID: 7, HotelName: "Contoso Suites Lakeside", City: "Seattle", Country: "USA"}}

	var js bytes.Buffer
	require.NoError(t, render(&js, "json", hotels))
	assert.JSONEq(t, `[{"hotelID":7,"hotelName":"Contoso Suites Lakeside","city":"Seattle","country":"USA"}]`, js.String())

	var ym bytes.Buffer
	require.NoError(t, render(&ym, "yaml", hotels))
	assert.Contains(t, ym.String(), "hotelName: Contoso Suites Lakeside")
	assert.True(t, strings.HasPrefix(ym.String(), "- "), ym.String())
}

func TestBookingsCommand_SinceHitsFilteredRoute(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode([]domain.Booking{})
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := rootCmd().Run(ctx, []string{"contosoctl", "--api", ts.URL, "bookings", "--hotel-id", "7", "--since", "2024-03-01"})
	require.NoError(t, err)
	assert.Equal(t, "/Hotels/7/Bookings/2024-03-01T00:00:00Z", gotPath)

	err = rootCmd().Run(ctx, []string{"contosoctl", "--api", ts.URL, "bookings", "--hotel-id", "7"})
	require.NoError(t, err)
	assert.Equal(t, "/Hotels/7/Bookings/", gotPath)
}

func TestBookingsCommand_RejectsBadSince(t *testing.T) {
	err := rootCmd().Run(context.Background(), []string{"contosoctl", "--api", "http://127.0.0.1:1", "bookings", "--hotel-id", "7", "--since", "soon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--since")
}
