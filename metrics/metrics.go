// Package metrics exposes gradebook counters and gauges to Prometheus.
package metrics

import (
	"strconv"

	"github.com/anjiri1684/gradebook/database"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gradebook"

// Rejection reasons for ResultsRejected.
const (
	ReasonStudentNotFound = "student_not_found"
	ReasonTestNotFound    = "test_not_found"
	ReasonInvalidScore    = "invalid_score"
)

// CountSource reports the current collection sizes.
type CountSource interface {
	Counts() database.Counts
}

type Metrics struct {
	StudentsCreated  prometheus.Counter
	TestsCreated     prometheus.Counter
	ResultsSubmitted prometheus.Counter
	ResultsRejected  *prometheus.CounterVec
	ResultsPurged    prometheus.Counter
	TestAverage      *prometheus.GaugeVec

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them, together with gauges that
// read the store sizes on every scrape, on reg.
func New(reg prometheus.Registerer, store CountSource) *Metrics {
	m := &Metrics{
		StudentsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "students_created_total",
			Help:      "Students created.",
		}),
		TestsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tests_created_total",
			Help:      "Tests created.",
		}),
		ResultsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "results_submitted_total",
			Help:      "Results admitted to the result log.",
		}),
		ResultsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "results_rejected_total",
			Help:      "Result submissions refused, by reason.",
		}, []string{"reason"}),
		ResultsPurged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "results_purged_total",
			Help:      "Results removed by student deletion.",
		}),
		TestAverage: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "test_average_score",
			Help:      "Average score per test as of the last digest run.",
		}, []string{"test_id"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		m.StudentsCreated,
		m.TestsCreated,
		m.ResultsSubmitted,
		m.ResultsRejected,
		m.ResultsPurged,
		m.TestAverage,
		m.HTTPRequests,
		m.HTTPDuration,
		storeGauge("store_students", "Students currently stored.", store, func(c database.Counts) int { return c.Students }),
		storeGauge("store_tests", "Tests currently stored.", store, func(c database.Counts) int { return c.Tests }),
		storeGauge("store_results", "Entries in the result log.", store, func(c database.Counts) int { return c.Results }),
	)
	return m
}

func storeGauge(name, help string, store CountSource, pick func(database.Counts) int) prometheus.GaugeFunc {
	return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	}, func() float64 {
		return float64(pick(store.Counts()))
	})
}

// SetTestAverage records the latest average for a test.
func (m *Metrics) SetTestAverage(testID int, avg float64) {
	m.TestAverage.WithLabelValues(strconv.Itoa(testID)).Set(avg)
}

// ClearTestAverage drops the series of a test that no longer has results.
func (m *Metrics) ClearTestAverage(testID int) {
	m.TestAverage.DeleteLabelValues(strconv.Itoa(testID))
}
