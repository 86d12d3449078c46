// internal/adapters/travelgql/client.go
package travelgql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"hotelmap/internal/adapters/observability"
	"hotelmap/internal/domain"
)

// Auth is the Couchbase credential pair forwarded inside the GraphQL
// variables of every query.
type Auth struct {
	Username string
	Password string
}

type Client struct {
	endpoint string
	hc       *http.Client
	key      string
	auth     Auth
	rl       *rate.Limiter
}

func New(endpoint, key string, auth Auth, rps int) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("GraphQL endpoint is required")
	}
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		endpoint: endpoint,
		hc:       &http.Client{Timeout: 20 * time.Second},
		key:      key,
		auth:     auth,
		rl:       rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// ---- Queries ----

const hotelFields = `
    id
    name
    address
    city
    country
    phone
    price
    url
    geo { lat lon }
    reviews { ratings { Overall } }`

const cityQuery = `query ListHotelsInCity($auth: CouchbaseAuth!, $city: String!) {
  listHotelsInCity(auth: $auth, city: $city) {` + hotelFields + `
  }
}`

const airportQuery = `query SearchHotelsNearAirport($auth: CouchbaseAuth!, $airportName: String!, $withinKm: Int!) {
  searchHotelsNearAirport(auth: $auth, airportName: $airportName, withinKm: $withinKm) {
    hotels {` + hotelFields + `
    }
    airport { name location { lat lon accuracy } }
  }
}`

func (c *Client) HotelsInCity(ctx context.Context, city string) ([]map[string]any, error) {
	data, err := c.post(ctx, "listHotelsInCity", cityQuery, map[string]any{
		"auth": c.authVars(),
		"city": city,
	})
	if err != nil {
		return nil, err
	}

	// An absent field means zero matches, not a broken response.
	raw, ok := data["listHotelsInCity"]
	if !ok {
		return nil, nil
	}
	var hotels []map[string]any
	if err := json.Unmarshal(raw, &hotels); err != nil {
		return nil, fmt.Errorf("decode listHotelsInCity: %w", err)
	}
	return hotels, nil
}

func (c *Client) HotelsNearAirport(ctx context.Context, airport string, withinKm int) (domain.ProximityPayload, error) {
	var out domain.ProximityPayload
	data, err := c.post(ctx, "searchHotelsNearAirport", airportQuery, map[string]any{
		"auth":        c.authVars(),
		"airportName": airport,
		"withinKm":    withinKm,
	})
	if err != nil {
		return out, err
	}

	raw, ok := data["searchHotelsNearAirport"]
	if !ok {
		return out, nil
	}
	var body struct {
		Hotels  []map[string]any `json:"hotels"`
		Airport map[string]any   `json:"airport"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return out, fmt.Errorf("decode searchHotelsNearAirport: %w", err)
	}
	out.Hotels = body.Hotels
	out.Airport = body.Airport
	return out, nil
}

func (c *Client) authVars() map[string]any {
	return map[string]any{
		"cb_username": c.auth.Username,
		"cb_password": c.auth.Password,
	}
}

// ---- Internals ----

var (
	ErrUnauthorized = errors.New("travelgql: unauthorized")
	ErrForbidden    = errors.New("travelgql: forbidden")
)

type gqlError struct {
	Message string `json:"message"`
}

type gqlEnvelope struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []gqlError                 `json:"errors"`
}

// post issues exactly one request per call; searches are never retried, a new
// user action issues a new query.
func (c *Client) post(ctx context.Context, operation, query string, variables map[string]any) (map[string]json.RawMessage, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(map[string]any{"query": query, "variables": variables})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-Key", c.key)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "hotelmap/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("travelgql", operation, 0, time.Since(start))
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("travelgql", operation, resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case http.StatusForbidden:
		return nil, ErrForbidden
	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var env gqlEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	// A non-empty errors list is a hard failure for the whole request;
	// partial data alongside it is discarded.
	if len(env.Errors) > 0 {
		msgs := make([]string, 0, len(env.Errors))
		for _, e := range env.Errors {
			msgs = append(msgs, e.Message)
		}
		return nil, fmt.Errorf("graphql errors: %s", strings.Join(msgs, "; "))
	}
	return env.Data, nil
}
