package app

import "hotelmap/internal/domain"

// OverallRating aggregates review "Overall" values (0-5 source scale) into
// a 0-10 rating: mean of the qualifying values times two, 0 when none
// qualify. Only JSON numbers count; numeric-looking strings and nulls are
// skipped.
func OverallRating(reviews []domain.ReviewRating) float64 {
	var sum float64
	var n int
	for _, r := range reviews {
		switch v := r.Overall.(type) {
		case float64:
			sum += v
			n++
		case int:
			sum += float64(v)
			n++
		}
	}
	if n == 0 {
		return 0.0
	}
	return (sum / float64(n)) * 2.0
}
