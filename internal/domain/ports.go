package domain

import "context"

// SearchClient talks to the travel query API. Adapters return raw decoded
// JSON objects; the app layer owns mapping them into records.
type SearchClient interface {
	HotelsInCity(ctx context.Context, city string) ([]map[string]any, error)
	HotelsNearAirport(ctx context.Context, airport string, withinKm int) (ProximityPayload, error)
}

// ProximityPayload is the two-part answer of an airport search. Airport is
// nil when the name resolved to nothing, regardless of the hotel list.
type ProximityPayload struct {
	Hotels  []map[string]any
	Airport map[string]any
}
