package server

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	collectorOnce     sync.Once
	collectorInstance *Collector
)

// Collector provides Prometheus metrics for the coach API.
type Collector struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	analysesTotal      *prometheus.CounterVec
	blundersFoundTotal prometheus.Counter
	analysisDuration   prometheus.Histogram
}

// NewCollector creates the Prometheus metrics collector (singleton).
func NewCollector() *Collector {
	collectorOnce.Do(func() {
		collectorInstance = &Collector{
			httpRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "chesscoach_http_requests_total",
					Help: "Total number of HTTP requests",
				},
				[]string{"method", "path", "status"},
			),
			httpRequestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "chesscoach_http_request_duration_seconds",
					Help:    "Duration of HTTP requests in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"method", "path"},
			),
			analysesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "chesscoach_analyses_total",
					Help: "Total number of game analyses",
				},
				[]string{"status"},
			),
			blundersFoundTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "chesscoach_blunders_found_total",
					Help: "Total number of blunders found across all analyses",
				},
			),
			analysisDuration: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "chesscoach_analysis_duration_seconds",
					Help:    "Duration of full game analyses in seconds",
					Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
				},
			),
		}
	})
	return collectorInstance
}

// RecordHTTPRequest records one HTTP request.
func (c *Collector) RecordHTTPRequest(method, path, status string, durationSecs float64) {
	c.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	c.httpRequestDuration.WithLabelValues(method, path).Observe(durationSecs)
}

// RecordAnalysis records a completed game analysis.
func (c *Collector) RecordAnalysis(success bool, blunders int, durationSecs float64) {
	status := "success"
	if !success {
		status = "error"
	}
	c.analysesTotal.WithLabelValues(status).Inc()
	c.blundersFoundTotal.Add(float64(blunders))
	c.analysisDuration.Observe(durationSecs)
}
