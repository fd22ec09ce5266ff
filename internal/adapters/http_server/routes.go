package httpserver

import (
	"net/http"

	"contoso_suites/internal/adapters/openapi"
)

// Route binds a method and chi pattern to a handler under a stable name.
// The name is published as the OpenAPI operationId.
type Route struct {
	Name    string
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Route names are part of the public contract; clients generate code from them.
const (
	RouteGetHotels                 = "GetHotels"
	RouteGetBookingsForHotel       = "GetBookingsForHotel"
	RouteGetRecentBookingsForHotel = "GetRecentBookingsForHotel"
)

// The trailing slash on the unfiltered bookings route is intentional and kept as published.
const (
	PatternHotels           = "/Hotels"
	PatternBookingsForHotel = "/Hotels/{hotelId}/Bookings/"
	PatternRecentBookings   = "/Hotels/{hotelId}/Bookings/{min_date}"
)

var hotelIDParamDoc = openapi.PathParam("hotelId", "integer", "int32", "Hotel identifier")

// Routes is the API route table.
func (h *Handlers) Routes() []Route {
	return []Route{
		{
			Name:    RouteGetHotels,
			Method:  http.MethodGet,
			Pattern: PatternHotels,
			Handler: h.getHotels,
			OpenAPI: &openapi.Operation{
				Summary:     "List hotels",
				Description: "Retrieve the set of hotels from the database.",
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSONArray("All hotels", "Hotel"),
					500: openapi.ResponseRef("InternalError"),
				},
			},
		},
		{
			Name:    RouteGetBookingsForHotel,
			Method:  http.MethodGet,
			Pattern: PatternBookingsForHotel,
			Handler: h.getBookingsForHotel,
			OpenAPI: &openapi.Operation{
				Summary:     "List bookings for a hotel",
				Description: "Retrieve the bookings for a specific hotel.",
				Parameters:  []*openapi.Parameter{hotelIDParamDoc},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSONArray("Bookings for the hotel", "Booking"),
					400: openapi.ResponseRef("BadRequest"),
					500: openapi.ResponseRef("InternalError"),
				},
			},
		},
		{
			Name:    RouteGetRecentBookingsForHotel,
			Method:  http.MethodGet,
			Pattern: PatternRecentBookings,
			Handler: h.getRecentBookingsForHotel,
			OpenAPI: &openapi.Operation{
				Summary:     "List recent bookings for a hotel",
				Description: "Retrieve the bookings for a specific hotel that start on or after a specified date.",
				Parameters: []*openapi.Parameter{
					hotelIDParamDoc,
					openapi.PathParam("min_date", "string", "date-time", "Earliest stay begin date (ISO-8601)"),
				},
				Responses: map[int]*openapi.Response{
					200: openapi.ResponseJSONArray("Bookings starting on or after min_date", "Booking"),
					400: openapi.ResponseRef("BadRequest"),
					500: openapi.ResponseRef("InternalError"),
				},
			},
		},
	}
}
