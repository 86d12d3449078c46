package domain

// RGBA marshals as the [r,g,b,a] array the scatterplot layer expects.
type RGBA [4]uint8

type MapPoint struct {
	Name          string  `json:"name"`
	Rating        float64 `json:"rating"`
	RatingDisplay string  `json:"rating_display"`
	Detail        string  `json:"detail"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	Color         RGBA    `json:"color"`
}

// ViewState uses the deck.gl field names so the payload can feed the map
// widget without renaming.
type ViewState struct {
	Lat     float64 `json:"latitude"`
	Lon     float64 `json:"longitude"`
	Zoom    int     `json:"zoom"`
	Pitch   int     `json:"pitch"`
	Bearing int     `json:"bearing"`
}

// MapDataset is the renderable result of one search: hotel points, the
// airport marker list (empty outside proximity searches) and the initial
// camera. Built fresh per search and never mutated afterwards.
type MapDataset struct {
	Points  []MapPoint `json:"points"`
	Airport []MapPoint `json:"airport_markers,omitempty"`
	View    ViewState  `json:"view"`
}
