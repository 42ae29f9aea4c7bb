package worker

import (
	"context"
	"log/slog"
	"time"

	"speed/internal/domain/entity"
	"speed/internal/handler/http/respond"
)

// DigestFunc produces and delivers one digest. digest.Service.Run satisfies it.
type DigestFunc func(ctx context.Context) (entity.QueueDigest, error)

// DigestJob runs a DigestFunc under a timeout and records job metrics.
// It is registered with the cron scheduler.
type DigestJob struct {
	Run     DigestFunc
	Timeout time.Duration
	Metrics *WorkerMetrics
	Logger  *slog.Logger
}

// Execute runs one digest. Errors are logged, never returned, so a failing
// run does not stop the schedule.
func (j *DigestJob) Execute() {
	start := time.Now()
	j.Metrics.RecordJobRun("started")
	j.Logger.Info("digest started")

	ctx, cancel := context.WithTimeout(context.Background(), j.Timeout)
	defer cancel()

	d, err := j.Run(ctx)
	j.Metrics.RecordJobDuration(time.Since(start).Seconds())
	if err != nil {
		// webhook URLs carry tokens
		j.Logger.Error("digest failed", slog.String("error", respond.SanitizeError(err)))
		j.Metrics.RecordJobRun("failure")
		return
	}

	j.Metrics.RecordJobRun("success")
	j.Metrics.RecordLastSuccess()
	j.Logger.Info("digest completed",
		slog.Int64("unmoderated", d.Unmoderated),
		slog.Int64("moderated", d.Moderated),
		slog.Int64("articles", d.Articles),
		slog.Int64("rejected", d.Rejected),
		slog.Duration("duration", time.Since(start)))
}
