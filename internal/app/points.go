package app

import (
	"fmt"
	"strings"

	"hotelmap/internal/domain"
)

// ProjectPoints turns hotel records into renderable markers. Records missing
// either coordinate are dropped; input order is preserved and nothing is
// deduplicated.
func ProjectPoints(hotels []domain.HotelRecord) []domain.MapPoint {
	points := make([]domain.MapPoint, 0, len(hotels))
	for _, h := range hotels {
		if h.Lat == nil || h.Lon == nil {
			continue
		}
		rating := OverallRating(h.Reviews)
		display := fmt.Sprintf("%.1f/10", rating)
		points = append(points, domain.MapPoint{
			Name:          h.Name,
			Rating:        rating,
			RatingDisplay: display,
			Detail:        detailText(h, display),
			Lat:           *h.Lat,
			Lon:           *h.Lon,
			Color:         RatingColor(rating),
		})
	}
	return points
}

// detailText renders the hover text under the marker name: fixed line order,
// empty strings where the record has no value.
func detailText(h domain.HotelRecord, ratingDisplay string) string {
	lines := []string{
		"Rating: " + ratingDisplay,
		h.Address,
		h.City + ", " + h.Country,
		"Price: " + h.Price,
		"Phone: " + h.Phone,
		h.URL,
	}
	return strings.Join(lines, "\n")
}

// AirportMarker builds the separate marker for a resolved airport.
func AirportMarker(a domain.AirportRecord) domain.MapPoint {
	lines := []string{"Airport"}
	if a.Accuracy != "" {
		lines = append(lines, "Accuracy: "+a.Accuracy)
	}
	return domain.MapPoint{
		Name:   a.Name,
		Detail: strings.Join(lines, "\n"),
		Lat:    a.Lat,
		Lon:    a.Lon,
		Color:  AirportMarkerColor,
	}
}
