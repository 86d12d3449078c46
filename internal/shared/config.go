package shared

import (
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	GQLEndpoint string
	APIKey      string
	CBUsername  string
	CBPassword  string
	SearchRPS   int
	MaxSearches int
	MapboxToken string
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		GQLEndpoint: env("SEARCH_GQL_ENDPOINT", ""),
		APIKey:      env("SEARCH_API_KEY", ""),
		CBUsername:  env("CB_USERNAME", ""),
		CBPassword:  env("CB_PASSWORD", ""),
		SearchRPS:   atoi("SEARCH_RPS", 5),
		MaxSearches: atoi("MAX_CONCURRENT_SEARCHES", 16),
		MapboxToken: env("MAPBOX_TOKEN", ""),
	}
	if c.APIKey == "" {
		log.Warn().Msg("SEARCH_API_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
