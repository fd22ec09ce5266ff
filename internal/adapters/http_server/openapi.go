package httpserver

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"contoso_suites/internal/adapters/openapi"
)

const apiVersion = "1.0.0"

// BuildSpec describes routes as an OpenAPI document. Each operationId is the route name.
func BuildSpec(routes []Route) *openapi.Spec {
	spec := &openapi.Spec{
		OpenAPI: "3.1.0",
		Info: &openapi.Info{
			Title:       "Contoso Suites API",
			Version:     apiVersion,
			Description: "Read-only access to Contoso Suites hotels and bookings.",
		},
		Paths:      make(map[string]*openapi.PathItem),
		Components: components(),
	}

	for _, rt := range routes {
		if rt.OpenAPI == nil || rt.Method != http.MethodGet {
			continue
		}
		op := *rt.OpenAPI
		op.OperationID = rt.Name
		if len(op.Tags) == 0 {
			op.Tags = []string{"Hotels"}
		}
		if spec.Paths[rt.Pattern] == nil {
			spec.Paths[rt.Pattern] = &openapi.PathItem{}
		}
		spec.Paths[rt.Pattern].Get = &op
	}
	return spec
}

func renderSpec(routes []Route) ([]byte, error) {
	return openapi.MarshalJSON(BuildSpec(routes))
}

func (s *Server) serveOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(s.spec); err != nil {
		log.Error().Err(err).Msg("failed to write openapi document")
	}
}

func components() *openapi.Components {
	problem := &openapi.Response{
		Content: map[string]*openapi.MediaType{
			"application/problem+json": {Schema: openapi.SchemaRef("Problem")},
		},
	}
	badRequest, internal := *problem, *problem
	badRequest.Description = "A path parameter could not be parsed"
	internal.Description = "The data store failed"

	return &openapi.Components{
		Schemas: map[string]*openapi.Schema{
			"Hotel": {
				Type: "object",
				Properties: map[string]*openapi.Schema{
					"hotelID":   {Type: "integer", Format: "int32"},
					"hotelName": {Type: "string"},
					"city":      {Type: "string"},
					"country":   {Type: "string"},
				},
				Required: []string{"hotelID", "hotelName", "city", "country"},
			},
			"Booking": {
				Type: "object",
				Properties: map[string]*openapi.Schema{
					"bookingID":      {Type: "integer", Format: "int32"},
					"customerID":     {Type: "integer", Format: "int32"},
					"hotelID":        {Type: "integer", Format: "int32"},
					"stayBeginDate":  {Type: "string", Format: "date-time"},
					"stayEndDate":    {Type: "string", Format: "date-time"},
					"numberOfGuests": {Type: "integer", Format: "int32"},
				},
				Required: []string{"bookingID", "customerID", "hotelID", "stayBeginDate", "stayEndDate", "numberOfGuests"},
			},
			"Problem": {
				Type: "object",
				Properties: map[string]*openapi.Schema{
					"type":   {Type: "string"},
					"title":  {Type: "string"},
					"status": {Type: "integer"},
					"detail": {Type: "string"},
				},
			},
		},
		Responses: map[string]*openapi.Response{
			"BadRequest":    &badRequest,
			"InternalError": &internal,
		},
	}
}
