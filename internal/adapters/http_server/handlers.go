// internal/adapters/http_server/handlers.go
package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"hotelmap/internal/adapters/observability"
	"hotelmap/internal/app"
	"hotelmap/internal/domain"
)

type Handlers struct {
	S           *app.SearchService
	MapboxToken string
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/search/city", h.searchCity)
	s.mux.Get("/v1/search/airport", h.searchAirport)
	s.mux.Get("/v1/map-config", h.mapConfig)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// searchEcho repeats the caller's inputs back in the response envelope.
type searchEcho struct {
	Mode     string `json:"mode"`
	City     string `json:"city,omitempty"`
	Airport  string `json:"airport,omitempty"`
	WithinKm int    `json:"within_km,omitempty"`
}

type searchStats struct {
	PointsPlotted int   `json:"points_plotted"`
	DurationMS    int64 `json:"duration_ms"`
}

type searchResponse struct {
	Status  string            `json:"status"`
	Search  searchEcho        `json:"search"`
	Stats   searchStats       `json:"stats"`
	Message string            `json:"message,omitempty"`
	Points  []domain.MapPoint `json:"points,omitempty"`
	Airport []domain.MapPoint `json:"airport_markers,omitempty"`
	View    *domain.ViewState `json:"view,omitempty"`
}

func (h *Handlers) searchCity(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid query", "city is required")
		return
	}

	start := time.Now()
	ds, err := h.S.CitySearch(r.Context(), city)
	writeSearchResult(w, searchEcho{Mode: string(domain.ModeCity), City: city}, ds, err, time.Since(start))
}

func (h *Handlers) searchAirport(w http.ResponseWriter, r *http.Request) {
	airport := strings.TrimSpace(r.URL.Query().Get("airport"))
	if airport == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid query", "airport is required")
		return
	}
	withinKm, err := strconv.Atoi(r.URL.Query().Get("within_km"))
	if err != nil || withinKm <= 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid query", "within_km must be a positive integer")
		return
	}

	start := time.Now()
	ds, err := h.S.AirportSearch(r.Context(), airport, withinKm)
	echo := searchEcho{Mode: string(domain.ModeAirport), Airport: airport, WithinKm: withinKm}
	writeSearchResult(w, echo, ds, err, time.Since(start))
}

// writeSearchResult maps terminal pipeline outcomes onto the wire: datasets
// and warnings go out as 200 with a status field, failed airport resolution
// is 404 and upstream trouble 502, both problem+json.
func writeSearchResult(w http.ResponseWriter, echo searchEcho, ds *domain.MapDataset, err error, dur time.Duration) {
	outcome := domain.OutcomeForErr(err)
	observability.ObserveSearch(echo.Mode, string(outcome))

	switch outcome {
	case domain.OutcomeOK:
		observability.ObservePoints(echo.Mode, len(ds.Points))
		writeJSON(w, http.StatusOK, searchResponse{
			Status:  string(outcome),
			Search:  echo,
			Stats:   searchStats{PointsPlotted: len(ds.Points), DurationMS: dur.Milliseconds()},
			Points:  ds.Points,
			Airport: ds.Airport,
			View:    &ds.View,
		})

	case domain.OutcomeNoResults, domain.OutcomeNoPlottable:
		// user-visible warnings, not errors
		writeJSON(w, http.StatusOK, searchResponse{
			Status:  string(outcome),
			Search:  echo,
			Stats:   searchStats{DurationMS: dur.Milliseconds()},
			Message: err.Error(),
		})

	case domain.OutcomeAirportMiss:
		writeProblem(w, http.StatusNotFound, "Airport not found", err.Error())

	default:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			writeProblem(w, http.StatusGatewayTimeout, "Search timed out", err.Error())
			return
		}
		writeProblem(w, http.StatusBadGateway, "Upstream search failed", err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to write search response")
	}
}

// mapConfig hands the map widget its basemap style and marker sizing. A
// configured Mapbox token switches to the Mapbox light style; otherwise the
// tokenless Carto basemap is used.
func (h *Handlers) mapConfig(w http.ResponseWriter, r *http.Request) {
	cfg := map[string]any{
		"style":        "https://basemaps.cartocdn.com/gl/positron-gl-style/style.json",
		"mapbox_token": "",
		"marker":       map[string]any{"radius_m": 8, "radius_min_px": 4, "radius_max_px": 20},
	}
	if h.MapboxToken != "" {
		cfg["style"] = "mapbox://styles/mapbox/light-v10"
		cfg["mapbox_token"] = h.MapboxToken
	}
	writeJSON(w, http.StatusOK, cfg)
}
