package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the widget server.
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec   // labels: route, status
	HTTPRequestDuration *prometheus.HistogramVec // labels: route
	AssetRequests       *prometheus.CounterVec   // labels: asset
	AppInfo             *prometheus.GaugeVec     // labels: version
}

// NewMetrics creates and registers all server metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.HTTPRequests,
		m.HTTPRequestDuration,
		m.AssetRequests,
		m.AppInfo,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_widget",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern and status code.",
		}, []string{"route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "weather_widget",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by route pattern.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}, []string{"route"}),
		AssetRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_widget",
			Name:      "asset_requests_total",
			Help:      "Embedded static asset requests by file name.",
		}, []string{"asset"}),
		AppInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "weather_widget",
			Name:      "app_info",
			Help:      "Always 1; labelled with the served app version.",
		}, []string{"version"}),
	}
}
