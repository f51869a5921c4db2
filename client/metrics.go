package client

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mite_client",
			Name:      "requests_total",
			Help:      "HTTP requests sent to the mite API, by status code and method.",
		},
		[]string{"code", "method"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mite_client",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP requests sent to the mite API.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

// instrumentTransport counts and times every round trip through next.
func instrumentTransport(next http.RoundTripper) http.RoundTripper {
	return promhttp.InstrumentRoundTripperCounter(requestsTotal,
		promhttp.InstrumentRoundTripperDuration(requestDuration, next))
}
