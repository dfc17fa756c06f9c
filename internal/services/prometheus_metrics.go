package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	customerCreatedTotal  prometheus.Counter
	customerUpdatedTotal  prometheus.Counter
	customerDeletedTotal  prometheus.Counter
	customerImportedTotal prometheus.Counter
	searchRequests        *prometheus.CounterVec
	searchDuration        prometheus.Histogram
	requestDuration       *prometheus.HistogramVec
	customersTotal        prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		customerCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "customer_created_total",
				Help: "Total number of customers created",
			},
		),
		customerUpdatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "customer_updated_total",
				Help: "Total number of customer updates",
			},
		),
		customerDeletedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "customer_deleted_total",
				Help: "Total number of customers deleted",
			},
		),
		customerImportedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "customer_imported_total",
				Help: "Total number of customers created through bulk import",
			},
		),
		searchRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_search_requests_total",
				Help: "Total number of customer search requests",
			},
			[]string{"status"},
		),
		searchDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "customer_search_duration_seconds",
				Help:    "Customer search duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "customer_request_duration_milliseconds",
				Help:    "Customer API request duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
		customersTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "customers_total",
				Help: "Current number of customers in the collection",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "customer_created":
		m.customerCreatedTotal.Inc()
	case "customer_updated":
		m.customerUpdatedTotal.Inc()
	case "customer_deleted":
		m.customerDeletedTotal.Inc()
	case "customer_imported":
		m.customerImportedTotal.Inc()
	case "customer_search_request":
		if status := tags["status"]; status != "" {
			m.searchRequests.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "customer_search":
		m.searchDuration.Observe(duration.Seconds())
	default:
		m.requestDuration.WithLabelValues(name).Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64) {
	if name == "customers_total" {
		m.customersTotal.Set(value)
	}
}
