package app

import (
	"context"

	"golang.org/x/sync/semaphore"

	"hotelmap/internal/domain"
)

// SearchService runs one upstream query per search and derives the
// renderable dataset from whatever came back. It keeps no state between
// searches; the semaphore only caps how many upstream queries are in
// flight at once.
type SearchService struct {
	client domain.SearchClient
	sem    *semaphore.Weighted
}

func NewSearchService(c domain.SearchClient, maxConcurrent int) *SearchService {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &SearchService{client: c, sem: semaphore.NewWeighted(int64(maxConcurrent))}
}

func (s *SearchService) CitySearch(ctx context.Context, city string) (*domain.MapDataset, error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer s.sem.Release(1)

	raw, err := s.client.HotelsInCity(ctx, city)
	if err != nil {
		return nil, err
	}

	res := domain.SearchResult{Mode: domain.ModeCity, City: city, Hotels: mapHotels(raw)}
	return buildDataset(res)
}

func (s *SearchService) AirportSearch(ctx context.Context, airport string, withinKm int) (*domain.MapDataset, error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer s.sem.Release(1)

	pp, err := s.client.HotelsNearAirport(ctx, airport, withinKm)
	if err != nil {
		return nil, err
	}

	// The airport must resolve before any hotel is looked at, even when the
	// hotel list came back non-empty.
	ap := mapAirport(pp.Airport)
	if ap == nil {
		return nil, domain.ErrAirportNotFound
	}

	res := domain.SearchResult{
		Mode:        domain.ModeAirport,
		AirportName: airport,
		RadiusKm:    withinKm,
		Hotels:      mapHotels(pp.Hotels),
		Airport:     ap,
	}
	return buildDataset(res)
}

// buildDataset is the shared tail of both modes: project, check, frame.
func buildDataset(res domain.SearchResult) (*domain.MapDataset, error) {
	if len(res.Hotels) == 0 {
		return nil, domain.ErrNoResults
	}
	points := ProjectPoints(res.Hotels)
	if len(points) == 0 {
		return nil, domain.ErrNoPlottablePoints
	}
	ds := &domain.MapDataset{
		Points: points,
		View:   FrameView(res.Mode, points, res.Airport),
	}
	if res.Airport != nil {
		ds.Airport = []domain.MapPoint{AirportMarker(*res.Airport)}
	}
	return ds, nil
}
