package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	server "hotelmap/internal/adapters/http_server"
	"hotelmap/internal/adapters/observability"
	"hotelmap/internal/adapters/travelgql"
	"hotelmap/internal/app"
	"hotelmap/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// deps
	client, err := travelgql.New(cfg.GQLEndpoint, cfg.APIKey,
		travelgql.Auth{Username: cfg.CBUsername, Password: cfg.CBPassword}, cfg.SearchRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize search client")
	}
	svc := app.NewSearchService(client, cfg.MaxSearches)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{S: svc, MapboxToken: cfg.MapboxToken})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
