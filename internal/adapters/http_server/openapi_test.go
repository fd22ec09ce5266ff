package httpserver_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpserver "contoso_suites/internal/adapters/http_server"
)

// The route names are a published contract: renaming or re-pathing one breaks generated clients.
func TestOpenAPI_RouteNamesSnapshot(t *testing.T) {
	rr := get(t, newServer(t, &fakeProvider{}), "/openapi.json")
	require.Equal(t, http.StatusOK, rr.Code)

	var doc struct {
		OpenAPI string `json:"openapi"`
		Paths   map[string]map[string]struct {
			OperationID string `json:"operationId"`
			Parameters  []struct {
				Name   string `json:"name"`
				In     string `json:"in"`
				Schema struct {
					Type   string `json:"type"`
					Format string `json:"format"`
				} `json:"schema"`
			} `json:"parameters"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &doc))
	assert.Equal(t, "3.1.0", doc.OpenAPI)

	got := map[string]string{}
	for path, item := range doc.Paths {
		for method, op := range item {
			got[op.OperationID] = method + " " + path
		}
	}
	assert.Equal(t, map[string]string{
		"GetHotels":                 "get /Hotels",
		"GetBookingsForHotel":       "get /Hotels/{hotelId}/Bookings/",
		"GetRecentBookingsForHotel": "get /Hotels/{hotelId}/Bookings/{min_date}",
	}, got)

	params := doc.Paths["/Hotels/{hotelId}/Bookings/{min_date}"]["get"].Parameters
	require.Len(t, params, 2)
	assert.Equal(t, "hotelId", params[0].Name)
	assert.Equal(t, "int32", params[0].Schema.Format)
	assert.Equal(t, "min_date", params[1].Name)
	assert.Equal(t, "date-time", params[1].Schema.Format)
}

func TestRouteTable_MatchesRegisteredRoutes(t *testing.T) {
	srv := httpserver.New(time.Second)
	require.NoError(t, srv.MountHandlers(httpserver.NewHandlers(&fakeProvider{})))

	var names []string
	for _, rt := range srv.Routes() {
		names = append(names, rt.Name)
		assert.Equal(t, http.MethodGet, rt.Method, rt.Name)
		assert.NotNil(t, rt.OpenAPI, rt.Name)
	}
	assert.Equal(t, []string{
		httpserver.RouteGetHotels,
		httpserver.RouteGetBookingsForHotel,
		httpserver.RouteGetRecentBookingsForHotel,
	}, names)

	spec := httpserver.BuildSpec(srv.Routes())
	assert.Contains(t, spec.Components.Schemas, "Booking")
	assert.Equal(t, "#/components/responses/BadRequest",
		spec.Paths[httpserver.PatternBookingsForHotel].Get.Responses[400].Ref)
}
