package app

import "hotelmap/internal/domain"

// AirportMarkerColor is the fixed opaque orange of airport markers. It is
// never produced by RatingColor.
var AirportMarkerColor = domain.RGBA{255, 140, 0, 255}

// RatingColor encodes a 0-10 rating as the marker fill: red fades out and
// green ramps up as the rating climbs. Out-of-range input clamps to the
// endpoints.
func RatingColor(rating float64) domain.RGBA {
	n := rating / 10.0
	if n < 0 {
		n = 0
	}
	if n > 1 {
		n = 1
	}
	red := int(255 * (1.0 - n))
	green := int(200*n + 30*(1.0-n))
	return domain.RGBA{uint8(red), uint8(green), 40, 200}
}
