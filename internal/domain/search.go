package domain

type SearchMode string

const (
	ModeCity    SearchMode = "city"
	ModeAirport SearchMode = "airport"
)

// SearchResult is the normalized outcome of one upstream query, before any
// projection. Airport is set only for proximity searches and may still be
// nil there when the resolver found no match.
type SearchResult struct {
	Mode        SearchMode
	City        string
	AirportName string
	RadiusKm    int
	Hotels      []HotelRecord
	Airport     *AirportRecord
}
