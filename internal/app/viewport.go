package app

import "hotelmap/internal/domain"

const cityZoom = 11

// spanEpsilon absorbs float64 subtraction error so a span sitting exactly on
// a zoom threshold resolves to the coarser level.
const spanEpsilon = 1e-9

// FrameView computes the initial camera for a search result. City searches
// center on the mean of the plotted coordinates at a fixed city-scale zoom;
// airport searches anchor on the airport itself and zoom to fit the hotels
// around it. Pitch and bearing stay 0. points must be non-empty.
func FrameView(mode domain.SearchMode, points []domain.MapPoint, airport *domain.AirportRecord) domain.ViewState {
	if mode == domain.ModeAirport && airport != nil {
		return domain.ViewState{
			Lat:  airport.Lat,
			Lon:  airport.Lon,
			Zoom: ZoomForSpan(contentSpan(points, *airport)),
		}
	}

	var latSum, lonSum float64
	for _, p := range points {
		latSum += p.Lat
		lonSum += p.Lon
	}
	n := float64(len(points))
	return domain.ViewState{Lat: latSum / n, Lon: lonSum / n, Zoom: cityZoom}
}

// ZoomForSpan maps the angular extent of the content to a zoom level, wider
// spans meaning coarser zoom.
func ZoomForSpan(span float64) int {
	switch {
	case span > 1.0-spanEpsilon:
		return 8
	case span > 0.5-spanEpsilon:
		return 9
	case span > 0.2-spanEpsilon:
		return 10
	case span > 0.1-spanEpsilon:
		return 11
	default:
		return 12
	}
}

// contentSpan is the larger of the latitude and longitude extents over the
// hotel points plus the airport anchor.
func contentSpan(points []domain.MapPoint, airport domain.AirportRecord) float64 {
	minLat, maxLat := airport.Lat, airport.Lat
	minLon, maxLon := airport.Lon, airport.Lon
	for _, p := range points {
		if p.Lat < minLat {
			minLat = p.Lat
		}
		if p.Lat > maxLat {
			maxLat = p.Lat
		}
		if p.Lon < minLon {
			minLon = p.Lon
		}
		if p.Lon > maxLon {
			maxLon = p.Lon
		}
	}
	latSpan := maxLat - minLat
	lonSpan := maxLon - minLon
	if lonSpan > latSpan {
		return lonSpan
	}
	return latSpan
}
