package httpserver

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"contoso_suites/internal/shared"
)

// hotelIDParam reads {hotelId} as a 32-bit signed integer.
func hotelIDParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "hotelId")
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("hotelId must be a 32-bit integer, got %q", raw)
	}
	return int(n), nil
}

// minDateParam reads {min_date} as an ISO-8601 date or date/time.
// The segment may arrive percent-encoded (e.g. %3A for the time separators).
func minDateParam(r *http.Request) (time.Time, error) {
	raw := chi.URLParam(r, "min_date")
	if s, err := url.PathUnescape(raw); err == nil {
		raw = s
	}
	return shared.ParseDateTime(raw)
}

func requestID(r *http.Request) string {
	return chimw.GetReqID(r.Context())
}
