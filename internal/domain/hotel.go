package domain

type HotelRecord struct {
	ID       string
	Name     string
	Address  string
	City     string
	Country  string
	Phone    string
	Price    string
	URL      string
	Lat, Lon *float64
	Reviews  []ReviewRating
}

// ReviewRating holds the raw decoded "Overall" value of one review.
// Aggregation decides what qualifies as numeric; everything else is
// carried as-is and skipped there.
type ReviewRating struct {
	Overall any
}

type AirportRecord struct {
	Name     string
	Lat, Lon float64
	Accuracy string // match accuracy reported by the resolver, display only
}
