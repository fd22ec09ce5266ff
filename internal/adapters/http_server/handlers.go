package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"contoso_suites/internal/domain"
)

// Handlers adapts HTTP requests onto a single DataAccess call each.
type Handlers struct{ da domain.DataAccess }

func NewHandlers(da domain.DataAccess) *Handlers { return &Handlers{da: da} }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// MountHandlers registers the health probe, the named API routes and the
// OpenAPI document generated from them.
func (s *Server) MountHandlers(h *Handlers) error {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	for _, rt := range h.Routes() {
		s.register(rt)
	}

	spec, err := renderSpec(s.routes)
	if err != nil {
		return err
	}
	s.spec = spec
	s.mux.Get("/openapi.json", s.serveOpenAPI)
	return nil
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return "", nil, err
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body, nil
}

// writeList serializes items as a JSON array; nil encodes as [].
func writeList[T any](w http.ResponseWriter, r *http.Request, route string, items []T) {
	if items == nil {
		items = []T{}
	}
	etag, body, err := calcETagAndBody(items)
	if err != nil {
		log.Error().Err(err).Str("route", route).Msg("failed to marshal response")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("route", route).Msg("failed to write body")
	}
}

// providerFailed reports a data access error without leaking its text to the client.
func providerFailed(w http.ResponseWriter, r *http.Request, route string, err error) {
	log.Error().Err(err).
		Str("route", route).
		Str("request_id", requestID(r)).
		Msg("data access failed")
	writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
}

func (h *Handlers) getHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.da.GetHotels(r.Context())
	if err != nil {
		providerFailed(w, r, RouteGetHotels, err)
		return
	}
	writeList(w, r, RouteGetHotels, hotels)
}

func (h *Handlers) getBookingsForHotel(w http.ResponseWriter, r *http.Request) {
	hotelID, err := hotelIDParam(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid hotelId", err.Error())
		return
	}
	bookings, err := h.da.GetBookingsForHotel(r.Context(), hotelID)
	if err != nil {
		providerFailed(w, r, RouteGetBookingsForHotel, err)
		return
	}
	writeList(w, r, RouteGetBookingsForHotel, bookings)
}

func (h *Handlers) getRecentBookingsForHotel(w http.ResponseWriter, r *http.Request) {
	hotelID, err := hotelIDParam(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid hotelId", err.Error())
		return
	}
	minDate, err := minDateParam(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid min_date", err.Error())
		return
	}
	bookings, err := h.da.GetBookingsByHotelAndMinimumDate(r.Context(), hotelID, minDate)
	if err != nil {
		providerFailed(w, r, RouteGetRecentBookingsForHotel, err)
		return
	}
	writeList(w, r, RouteGetRecentBookingsForHotel, bookings)
}
