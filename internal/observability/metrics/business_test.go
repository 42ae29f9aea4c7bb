package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordSubmission(t *testing.T) {
	before := testutil.ToFloat64(SubmissionsTotal.WithLabelValues(ResultInvalid))
	RecordSubmission(ResultInvalid)
	assert.Equal(t, before+1, testutil.ToFloat64(SubmissionsTotal.WithLabelValues(ResultInvalid)))
}

func TestRecordRejection(t *testing.T) {
	before := testutil.ToFloat64(RejectionsTotal.WithLabelValues("analyst"))
	RecordRejection("analyst")
	RecordRejection("analyst")
	assert.Equal(t, before+2, testutil.ToFloat64(RejectionsTotal.WithLabelValues("analyst")))
}

func TestRecordModerationAndPromotion(t *testing.T) {
	mod := testutil.ToFloat64(ModerationsTotal)
	pro := testutil.ToFloat64(PromotionsTotal)

	RecordModeration()
	RecordPromotion()

	assert.Equal(t, mod+1, testutil.ToFloat64(ModerationsTotal))
	assert.Equal(t, pro+1, testutil.ToFloat64(PromotionsTotal))
}

func TestUpdateStoreSizes(t *testing.T) {
	UpdateStoreSizes(3, 2, 10, 4)

	assert.Equal(t, 3.0, testutil.ToFloat64(QueueSize.WithLabelValues("unmoderated")))
	assert.Equal(t, 2.0, testutil.ToFloat64(QueueSize.WithLabelValues("moderated")))
	assert.Equal(t, 10.0, testutil.ToFloat64(ArticlesTotal))
	assert.Equal(t, 4.0, testutil.ToFloat64(RejectedTotal))
}

func TestRecordEventPublished(t *testing.T) {
	before := testutil.ToFloat64(EventsPublishedTotal.WithLabelValues("article.promoted", "failure"))
	RecordEventPublished("article.promoted", false)
	assert.Equal(t, before+1, testutil.ToFloat64(EventsPublishedTotal.WithLabelValues("article.promoted", "failure")))
}

func TestRecorders_NoPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordPartialFailure("promote")
		RecordWorkflowDuration("submit", 15*time.Millisecond)
		RecordImportedRecord("queued")
	})
}

func TestRecordNotification(t *testing.T) {
	before := testutil.ToFloat64(NotificationsSentTotal.WithLabelValues("slack", "success"))
	RecordNotification("slack", true)
	assert.Equal(t, before+1, testutil.ToFloat64(NotificationsSentTotal.WithLabelValues("slack", "success")))
}

func TestRecordDigestRun(t *testing.T) {
	before := testutil.ToFloat64(DigestRunsTotal.WithLabelValues("skipped"))
	RecordDigestRun("skipped")
	assert.Equal(t, before+1, testutil.ToFloat64(DigestRunsTotal.WithLabelValues("skipped")))
}
