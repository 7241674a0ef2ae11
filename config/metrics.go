package config

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "hjarta"
	metricsSubsystem = "config"
)

type storeMetrics struct {
	cacheHits     prometheus.Counter
	cacheMisses   prometheus.Counter
	parses        prometheus.Counter
	parseFailures prometheus.Counter
	fileFailures  prometheus.Counter
}

// newStoreMetrics registers with registerer when it is non-nil.
// Registering two stores with one registerer panics, as promauto does.
func newStoreMetrics(registerer prometheus.Registerer) *storeMetrics {
	factory := promauto.With(registerer)

	counter := func(name, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{ //nolint:exhaustruct // only relevant fields needed
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      name,
			Help:      help,
		})
	}

	return &storeMetrics{
		cacheHits:     counter("cache_hits_total", "Opens served from the parsed-file cache."),
		cacheMisses:   counter("cache_misses_total", "Opens that had to read and parse the file."),
		parses:        counter("parses_total", "Parser invocations, successful or not."),
		parseFailures: counter("parse_failures_total", "Parser invocations that returned an error."),
		fileFailures:  counter("file_failures_total", "Files that were missing, not regular, or unreadable."),
	}
}
