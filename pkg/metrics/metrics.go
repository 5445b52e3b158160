// Package metrics owns the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tinylink"

// Metrics groups the service collectors behind a private registry.
type Metrics struct {
	registry *prometheus.Registry

	Requests     *prometheus.CounterVec
	Duration     *prometheus.HistogramVec
	LinksCreated *prometheus.CounterVec
	Redirects    prometheus.Counter
	LinksDeleted prometheus.Counter
}

// NewMetrics creates and registers every collector.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
	}

	m.Requests = m.RegisterCounter("requests_total", "Handled requests by operation and status code.", []string{"operation", "code"})
	m.Duration = m.RegisterHistogram("request_duration_seconds", "Request latency by operation.", []string{"operation"}, prometheus.DefBuckets)
	m.LinksCreated = m.RegisterCounter("links_created_total", "Links created, split by code origin.", []string{"origin"})

	m.Redirects = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "redirects_total",
		Help:      "Successful redirects.",
	})
	m.LinksDeleted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "links_deleted_total",
		Help:      "Links deleted.",
	})
	m.registry.MustRegister(
		m.Redirects,
		m.LinksDeleted,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// RegisterCounter registers a namespaced counter vector.
func (m *Metrics) RegisterCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	}, labels)

	m.registry.MustRegister(counter)
	return counter
}

// RegisterHistogram registers a namespaced histogram vector.
func (m *Metrics) RegisterHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	histogram := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
		Buckets:   buckets,
	}, labels)

	m.registry.MustRegister(histogram)
	return histogram
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
