package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"sync"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discovery_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	RequestsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discovery_requests_total",
			Help: "Total number of discovery operations by outcome.",
		},
		[]string{"operation", "outcome"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "discovery_request_duration_seconds",
			Help:    "Duration of discovery operations in seconds.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"operation"},
	)
	ZeroResultSearchesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "discovery_zero_result_searches_total",
			Help: "Total number of searches that matched no active posting.",
		},
	)
	FilteredSearchesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discovery_filtered_searches_total",
			Help: "Total number of searches using each filter dimension.",
		},
		[]string{"facet"},
	)
	ActivePostings = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "discovery_active_postings",
			Help: "Number of active postings visible to discovery.",
		},
	)
	ActivePostingsByRole = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "discovery_active_postings_by_role",
			Help: "Number of active postings per role category.",
		},
		[]string{"role"},
	)
)

var registerOnce sync.Once

func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(ErrorsCounter)
		prometheus.MustRegister(RequestsCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(ZeroResultSearchesCounter)
		prometheus.MustRegister(FilteredSearchesCounter)
		prometheus.MustRegister(ActivePostings)
		prometheus.MustRegister(ActivePostingsByRole)
	})
}

func Handler() http.Handler {
	Register()
	return promhttp.Handler()
}
