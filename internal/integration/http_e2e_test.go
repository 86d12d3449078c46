//go:build integration || !unit

package integration

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpserver "hotelmap/internal/adapters/http_server"
	"hotelmap/internal/adapters/travelgql"
	"hotelmap/internal/app"
)

// ---------- fake query API ----------

// gqlUpstream serves both GraphQL operations the way the real query API
// does: routing on the operation name inside the posted query document.
func gqlUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		b, _ := io.ReadAll(r.Body)
		var body struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		if err := json.Unmarshal(b, &body); err != nil {
			t.Errorf("upstream got unreadable body: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch {
		case strings.Contains(body.Query, "listHotelsInCity"):
			if body.Variables["city"] == "Atlantis" {
				_, _ = w.Write([]byte(`{"data":{"listHotelsInCity":[]}}`))
				return
			}
			_, _ = w.Write([]byte(`{"data":{"listHotelsInCity":[
				{"id":"h1","name":"Alpha","address":"1 Quai A","city":"Lyon","country":"France",
				 "phone":"+33 1","price":"120 EUR","url":"https://alpha.example",
				 "geo":{"lat":45.75,"lon":4.85},
				 "reviews":[{"ratings":{"Overall":4}},{"ratings":{"Overall":5}},{"ratings":{"Overall":"n/a"}}]},
				{"id":"h2","name":"Beta","geo":{"lat":45.76,"lon":4.84},"reviews":[]},
				{"id":"h3","name":"NoGeo","reviews":[]}
			]}}`))

		case strings.Contains(body.Query, "searchHotelsNearAirport"):
			if body.Variables["airportName"] == "XXX" {
				// unresolved airport still ships hotel rows
				_, _ = w.Write([]byte(`{"data":{"searchHotelsNearAirport":{
					"hotels":[{"id":"h1","name":"Alpha","geo":{"lat":10.0,"lon":20.0}}],
					"airport":null}}}`))
				return
			}
			_, _ = w.Write([]byte(`{"data":{"searchHotelsNearAirport":{
				"hotels":[
					{"id":"h1","name":"Alpha","geo":{"lat":10.0,"lon":20.0},"reviews":[{"ratings":{"Overall":5}}]},
					{"id":"h2","name":"Beta","geo":{"lat":10.2,"lon":20.01}},
					{"id":"h3","name":"Gamma","geo":{"lat":10.05,"lon":20.02}}
				],
				"airport":{"name":"Testfield","location":{"lat":10.1,"lon":20.0,"accuracy":"exact"}}}}}`))

		default:
			_, _ = w.Write([]byte(`{"errors":[{"message":"unknown operation"}]}`))
		}
	}))
}

// newStack wires the real client, pipeline, middleware and handlers against
// the fake upstream.
func newStack(t *testing.T, upstreamURL string) *httptest.Server {
	t.Helper()
	client, err := travelgql.New(upstreamURL, "itest-key", travelgql.Auth{Username: "admin", Password: "pw"}, 100)
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{S: app.NewSearchService(client, 4)})
	return httptest.NewServer(srv.Mux())
}

func get(t *testing.T, url string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return resp.StatusCode, out
}

// ---------- the tests ----------

func TestHTTP_EndToEnd_CitySearch(t *testing.T) {
	up := gqlUpstream(t)
	defer up.Close()
	api := newStack(t, up.URL)
	defer api.Close()

	status, body := get(t, api.URL+"/v1/search/city?city=Lyon")
	if status != http.StatusOK || body["status"] != "success" {
		t.Fatalf("status=%d body=%v", status, body)
	}

	// NoGeo is dropped, order of the survivors preserved
	points, _ := body["points"].([]any)
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	first, _ := points[0].(map[string]any)
	if first["name"] != "Alpha" {
		t.Fatalf("order not preserved: %v", first)
	}
	// mean of 4 and 5, the "n/a" review skipped, doubled to the 0-10 scale
	if first["rating"] != 9.0 || first["rating_display"] != "9.0/10" {
		t.Fatalf("rating = %v (%v)", first["rating"], first["rating_display"])
	}
	detail, _ := first["detail"].(string)
	if !strings.Contains(detail, "Rating: 9.0/10") || !strings.Contains(detail, "Lyon, France") {
		t.Fatalf("detail text: %q", detail)
	}
	second, _ := points[1].(map[string]any)
	if second["rating"] != 0.0 {
		t.Fatalf("reviewless hotel should rate 0, got %v", second["rating"])
	}

	view, _ := body["view"].(map[string]any)
	if view["zoom"] != 11.0 || view["pitch"] != 0.0 || view["bearing"] != 0.0 {
		t.Fatalf("city view: %v", view)
	}
}

func TestHTTP_EndToEnd_CitySearch_NoResults(t *testing.T) {
	up := gqlUpstream(t)
	defer up.Close()
	api := newStack(t, up.URL)
	defer api.Close()

	status, body := get(t, api.URL+"/v1/search/city?city=Atlantis")
	if status != http.StatusOK || body["status"] != "no_results" {
		t.Fatalf("status=%d body=%v", status, body)
	}
}

func TestHTTP_EndToEnd_AirportSearch(t *testing.T) {
	up := gqlUpstream(t)
	defer up.Close()
	api := newStack(t, up.URL)
	defer api.Close()

	status, body := get(t, api.URL+"/v1/search/airport?airport=Testfield&within_km=15")
	if status != http.StatusOK || body["status"] != "success" {
		t.Fatalf("status=%d body=%v", status, body)
	}

	// camera anchored on the airport; lat span 0.2 lands on zoom 10
	view, _ := body["view"].(map[string]any)
	if view["latitude"] != 10.1 || view["longitude"] != 20.0 {
		t.Fatalf("view not anchored on airport: %v", view)
	}
	if view["zoom"] != 10.0 {
		t.Fatalf("zoom = %v, want 10", view["zoom"])
	}

	markers, _ := body["airport_markers"].([]any)
	if len(markers) != 1 {
		t.Fatalf("airport markers: %v", body["airport_markers"])
	}
	m, _ := markers[0].(map[string]any)
	if m["name"] != "Testfield" {
		t.Fatalf("marker: %v", m)
	}
}

func TestHTTP_EndToEnd_AirportSearch_NotFound(t *testing.T) {
	up := gqlUpstream(t)
	defer up.Close()
	api := newStack(t, up.URL)
	defer api.Close()

	status, body := get(t, api.URL+"/v1/search/airport?airport=XXX&within_km=15")
	if status != http.StatusNotFound {
		t.Fatalf("status=%d body=%v", status, body)
	}
}

func TestHTTP_EndToEnd_UpstreamErrorsSurface(t *testing.T) {
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[{"message":"index timeout"}]}`))
	}))
	defer up.Close()
	api := newStack(t, up.URL)
	defer api.Close()

	status, body := get(t, api.URL+"/v1/search/city?city=Lyon")
	if status != http.StatusBadGateway {
		t.Fatalf("status=%d body=%v", status, body)
	}
	detail, _ := body["detail"].(string)
	if !strings.Contains(detail, "index timeout") {
		t.Fatalf("upstream message not surfaced: %v", body)
	}
}
