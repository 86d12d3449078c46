package observability

import (
	"fmt"
	"github.com/rs/zerolog/log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotelmap", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hotelmap", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ExternalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotelmap", Name: "external_requests_total", Help: "Outbound query-API requests."},
		[]string{"service", "operation", "status"},
	)
	ExternalLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hotelmap", Name: "external_request_duration_seconds",
			Help:    "Outbound query-API request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "operation"},
	)
	SearchOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotelmap", Name: "search_outcomes_total", Help: "Terminal search outcomes per mode."},
		[]string{"mode", "outcome"}, // outcome: success|no_results|no_plottable_points|airport_not_found|transport_error
	)
	PointsPlotted = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hotelmap", Name: "search_points_plotted",
			Help:    "Markers produced per successful search.",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250},
		},
		[]string{"mode"},
	)
)

func Serve() {
	addr := os.Getenv("METRICS_ADDR")
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, ExternalRequests, ExternalLatency, SearchOutcomes, PointsPlotted)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveExternal(service, operation string, status int, dur time.Duration) {
	ExternalRequests.WithLabelValues(service, operation, strconv.Itoa(status)).Inc()
	ExternalLatency.WithLabelValues(service, operation).Observe(dur.Seconds())
}

func ObserveSearch(mode, outcome string) {
	SearchOutcomes.WithLabelValues(mode, outcome).Inc()
}

func ObservePoints(mode string, n int) {
	PointsPlotted.WithLabelValues(mode).Observe(float64(n))
}

func LabelErr(err error) string {
	if err == nil {
		return "none"
	}
	return fmt.Sprintf("%T", err)
}
