// Package digest builds the periodic moderation digest: it snapshots the
// queue and store sizes, refreshes the Prometheus gauges and, when anything is
// waiting for review, sends the snapshot to every configured chat channel.
package digest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"speed/internal/domain/entity"
	"speed/internal/infra/notifier"
	"speed/internal/observability/metrics"
	"speed/internal/observability/tracing"
	"speed/internal/repository"
)

// Run results recorded by metrics.RecordDigestRun.
const (
	ResultSent    = "sent"
	ResultSkipped = "skipped"
	ResultError   = "error"
)

// Service gathers counts from the three stores and fans the digest out to notifiers.
type Service struct {
	Queue     repository.QueuedArticleRepository
	Articles  repository.ArticleRepository
	Rejected  repository.RejectedEntryRepository
	Notifiers []notifier.Notifier
	Now       func() time.Time
}

// Snapshot reads the current store sizes concurrently.
func (s *Service) Snapshot(ctx context.Context) (entity.QueueDigest, error) {
	var (
		queue    repository.QueueCounts
		articles int64
		rejected int64
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		queue, err = s.Queue.CountByModeration(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		articles, err = s.Articles.CountArticles(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		rejected, err = s.Rejected.CountRejected(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return entity.QueueDigest{}, fmt.Errorf("snapshot stores: %w", err)
	}

	now := time.Now().UTC()
	if s.Now != nil {
		now = s.Now()
	}
	return entity.QueueDigest{
		Unmoderated: queue.Unmoderated,
		Moderated:   queue.Moderated,
		Articles:    articles,
		Rejected:    rejected,
		GeneratedAt: now,
	}, nil
}

// Run takes a snapshot, updates the store gauges and notifies when there is a backlog.
// A failing channel does not stop delivery to the others; their errors are
// logged and the first one is returned.
func (s *Service) Run(ctx context.Context) (entity.QueueDigest, error) {
	ctx, span := tracing.StartSpan(ctx, "digest.Run")
	defer span.End()

	d, err := s.Snapshot(ctx)
	if err != nil {
		metrics.RecordDigestRun(ResultError)
		tracing.RecordError(span, err)
		return d, err
	}
	metrics.UpdateStoreSizes(d.Unmoderated, d.Moderated, d.Articles, d.Rejected)

	if d.Backlog() == 0 {
		slog.Info("review queue empty, digest not sent")
		metrics.RecordDigestRun(ResultSkipped)
		return d, nil
	}

	var firstErr error
	for _, n := range s.Notifiers {
		err := n.NotifyDigest(ctx, d)
		metrics.RecordNotification(n.Name(), err == nil)
		if err != nil {
			slog.Warn("digest notification failed",
				slog.String("channel", n.Name()),
				slog.Any("error", err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		slog.Info("digest notification sent",
			slog.String("channel", n.Name()),
			slog.Int64("unmoderated", d.Unmoderated),
			slog.Int64("moderated", d.Moderated))
	}

	if firstErr != nil {
		metrics.RecordDigestRun(ResultError)
		tracing.RecordError(span, firstErr)
		return d, fmt.Errorf("send digest: %w", firstErr)
	}
	metrics.RecordDigestRun(ResultSent)
	return d, nil
}
