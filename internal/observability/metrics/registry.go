// Package metrics provides centralized Prometheus metrics for the review workflow.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Workflow metrics track submissions as they move between stores
var (
	// SubmissionsTotal counts article submissions by result (accepted, invalid, error)
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "speed_submissions_total",
			Help: "Total number of article submissions",
		},
		[]string{"result"},
	)

	// ModerationsTotal counts queued articles accepted by a moderator
	ModerationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "speed_moderations_total",
			Help: "Total number of queued articles marked as moderated",
		},
	)

	// PromotionsTotal counts queued articles promoted into the article store
	PromotionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "speed_promotions_total",
			Help: "Total number of articles promoted to the searchable database",
		},
	)

	// RejectionsTotal counts rejected submissions by review stage
	RejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "speed_rejections_total",
			Help: "Total number of rejected submissions",
		},
		[]string{"stage"},
	)

	// WorkflowStepFailures counts the second step of promote/reject failing after the first succeeded
	WorkflowStepFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "speed_workflow_partial_failures_total",
			Help: "Total number of promote/reject operations that failed after their first write",
		},
		[]string{"operation"},
	)

	// WorkflowDuration measures workflow operation latency
	WorkflowDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "speed_workflow_duration_seconds",
			Help:    "Workflow operation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"operation"},
	)
)

// Store gauges are refreshed by the worker's digest job
var (
	// QueueSize tracks queued articles by moderation state (unmoderated, moderated)
	QueueSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "speed_queue_size",
			Help: "Number of queued articles by moderation state",
		},
		[]string{"state"},
	)

	// ArticlesTotal tracks total number of published articles
	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "speed_articles_total",
			Help: "Total number of published articles",
		},
	)

	// RejectedTotal tracks total number of rejected entries
	RejectedTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "speed_rejected_total",
			Help: "Total number of rejected entries",
		},
	)
)

// Integration metrics
var (
	// EventsPublishedTotal counts workflow events by type and result (success, failure)
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "speed_events_published_total",
			Help: "Total number of workflow events published",
		},
		[]string{"type", "result"},
	)

	// ImportedRecordsTotal counts records processed by the bulk importer by result
	ImportedRecordsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "speed_import_records_total",
			Help: "Total number of records processed by bulk import",
		},
		[]string{"result"},
	)

	// NotificationsSentTotal counts digest notifications by channel and result
	NotificationsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "speed_notifications_sent_total",
			Help: "Total number of digest notifications sent",
		},
		[]string{"channel", "result"},
	)

	// DigestRunsTotal counts scheduled digest runs by result
	DigestRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "speed_digest_runs_total",
			Help: "Total number of moderation digest runs",
		},
		[]string{"result"},
	)
)
