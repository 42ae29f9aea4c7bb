package metrics

import (
	"time"
)

// Submission results.
const (
	ResultAccepted = "accepted"
	ResultInvalid  = "invalid"
	ResultError    = "error"
)

// RecordSubmission records the outcome of a submission.
func RecordSubmission(result string) {
	SubmissionsTotal.WithLabelValues(result).Inc()
}

// RecordModeration records a moderator accepting a queued article.
func RecordModeration() {
	ModerationsTotal.Inc()
}

// RecordPromotion records an article promoted to the searchable database.
func RecordPromotion() {
	PromotionsTotal.Inc()
}

// RecordRejection records a rejection at the given stage (moderator or analyst).
func RecordRejection(stage string) {
	RejectionsTotal.WithLabelValues(stage).Inc()
}

// RecordPartialFailure records a promote or reject whose second write failed.
func RecordPartialFailure(operation string) {
	WorkflowStepFailures.WithLabelValues(operation).Inc()
}

// RecordWorkflowDuration records the duration of a named workflow operation.
func RecordWorkflowDuration(operation string, duration time.Duration) {
	WorkflowDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateStoreSizes sets the store gauges.
// This should be called periodically to reflect the current state.
func UpdateStoreSizes(unmoderated, moderated, articles, rejected int64) {
	QueueSize.WithLabelValues("unmoderated").Set(float64(unmoderated))
	QueueSize.WithLabelValues("moderated").Set(float64(moderated))
	ArticlesTotal.Set(float64(articles))
	RejectedTotal.Set(float64(rejected))
}

// RecordEventPublished records a workflow event publish attempt.
func RecordEventPublished(eventType string, success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	EventsPublishedTotal.WithLabelValues(eventType, result).Inc()
}

// RecordImportedRecord records one bulk import record (queued, invalid, error).
func RecordImportedRecord(result string) {
	ImportedRecordsTotal.WithLabelValues(result).Inc()
}

// RecordNotification records one digest delivery attempt for a channel.
func RecordNotification(channel string, success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	NotificationsSentTotal.WithLabelValues(channel, result).Inc()
}

// RecordDigestRun records a digest run result (sent, skipped, error).
func RecordDigestRun(result string) {
	DigestRunsTotal.WithLabelValues(result).Inc()
}
