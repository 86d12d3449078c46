package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"hotelmap/internal/adapters/observability"
	"hotelmap/internal/adapters/travelgql"
	"hotelmap/internal/app"
	"hotelmap/internal/domain"
	"hotelmap/internal/shared"
)

// searchcli runs one search against the configured query API and prints the
// renderable dataset as JSON. Useful for poking at an endpoint without the
// HTTP service in front.
func main() {
	city := flag.String("city", "", "search hotels in this city")
	airport := flag.String("airport", "", "search hotels near this airport")
	withinKm := flag.Int("within-km", 10, "radius for -airport searches, in kilometers")
	flag.Parse()

	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	if (*city == "") == (*airport == "") {
		log.Fatal().Msg("pass exactly one of -city or -airport")
	}

	client, err := travelgql.New(cfg.GQLEndpoint, cfg.APIKey,
		travelgql.Auth{Username: cfg.CBUsername, Password: cfg.CBPassword}, cfg.SearchRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize search client")
	}
	svc := app.NewSearchService(client, 1)

	ctx := context.Background()
	var ds *domain.MapDataset
	if *city != "" {
		ds, err = svc.CitySearch(ctx, *city)
	} else {
		ds, err = svc.AirportSearch(ctx, *airport, *withinKm)
	}
	if err != nil {
		log.Error().Err(err).
			Str("outcome", string(domain.OutcomeForErr(err))).
			Msg("search failed")
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ds); err != nil {
		log.Fatal().Err(err).Msg("encode dataset")
	}
}
