package app_test

import (
	"testing"

	"hotelmap/internal/app"
	"hotelmap/internal/domain"
)

func TestRatingColor_Endpoints(t *testing.T) {
	if got := app.RatingColor(0); got != (domain.RGBA{255, 30, 40, 200}) {
		t.Fatalf("rating 0: got %v", got)
	}
	if got := app.RatingColor(10); got != (domain.RGBA{0, 200, 40, 200}) {
		t.Fatalf("rating 10: got %v", got)
	}
}

func TestRatingColor_ClampsOutOfRange(t *testing.T) {
	if got := app.RatingColor(-3); got != app.RatingColor(0) {
		t.Fatalf("below range: got %v", got)
	}
	if got := app.RatingColor(14); got != app.RatingColor(10) {
		t.Fatalf("above range: got %v", got)
	}
}

func TestRatingColor_MonotonicOverScale(t *testing.T) {
	prev := app.RatingColor(0)
	for r := 0.5; r <= 10.0; r += 0.5 {
		cur := app.RatingColor(r)
		if cur[0] > prev[0] {
			t.Fatalf("red increased at %v: %d -> %d", r, prev[0], cur[0])
		}
		if cur[1] < prev[1] {
			t.Fatalf("green decreased at %v: %d -> %d", r, prev[1], cur[1])
		}
		if cur[2] != 40 || cur[3] != 200 {
			t.Fatalf("blue/alpha drifted at %v: %v", r, cur)
		}
		prev = cur
	}
}

func TestAirportMarkerColor_IsNotARatingColor(t *testing.T) {
	if app.AirportMarkerColor != (domain.RGBA{255, 140, 0, 255}) {
		t.Fatalf("unexpected airport color: %v", app.AirportMarkerColor)
	}
	for r := 0.0; r <= 10.0; r += 0.1 {
		if app.RatingColor(r) == app.AirportMarkerColor {
			t.Fatalf("encoder produced the airport color at rating %v", r)
		}
	}
}
