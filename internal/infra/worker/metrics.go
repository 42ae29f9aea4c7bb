package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"speed/internal/pkg/config"
)

// WorkerMetrics adds scheduled-job metrics to the worker's ConfigMetrics.
//
//   - speed_worker_digest_job_runs_total{status}
//   - speed_worker_digest_job_duration_seconds
//   - speed_worker_digest_job_last_success_timestamp
type WorkerMetrics struct {
	*config.ConfigMetrics

	JobRunsTotal         *prometheus.CounterVec
	JobDurationSeconds   prometheus.Histogram
	LastSuccessTimestamp prometheus.Gauge
}

// NewWorkerMetrics registers the worker metrics with the default registry.
func NewWorkerMetrics() *WorkerMetrics {
	return NewWorkerMetricsWith(prometheus.DefaultRegisterer)
}

// NewWorkerMetricsWith registers the worker metrics with reg.
func NewWorkerMetricsWith(reg prometheus.Registerer) *WorkerMetrics {
	f := promauto.With(reg)
	return &WorkerMetrics{
		ConfigMetrics: config.NewConfigMetricsWith(reg, "speed_worker"),

		JobRunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "speed_worker_digest_job_runs_total",
			Help: "Total number of scheduled digest runs by status (started/success/failure)",
		}, []string{"status"}),

		JobDurationSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "speed_worker_digest_job_duration_seconds",
			Help:    "Duration of scheduled digest runs in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 60, 300},
		}),

		LastSuccessTimestamp: f.NewGauge(prometheus.GaugeOpts{
			Name: "speed_worker_digest_job_last_success_timestamp",
			Help: "Unix timestamp of the last successful digest run",
		}),
	}
}

func (m *WorkerMetrics) RecordJobRun(status string) {
	m.JobRunsTotal.WithLabelValues(status).Inc()
}

func (m *WorkerMetrics) RecordJobDuration(seconds float64) {
	m.JobDurationSeconds.Observe(seconds)
}

func (m *WorkerMetrics) RecordLastSuccess() {
	m.LastSuccessTimestamp.SetToCurrentTime()
}
