package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"speed/internal/domain/entity"
	"speed/internal/observability/logging"
	"speed/internal/observability/metrics"
	"speed/internal/observability/tracing"
	"speed/internal/repository"
)

// EventPublisher receives workflow transitions. Publishing is best effort.
type EventPublisher interface {
	Publish(ctx context.Context, event entity.WorkflowEvent) error
}

// Service orchestrates transitions between the queue, article and rejected stores.
// Operations are not transactional: promote and reject are two separate writes,
// and a failure of the second write is logged and returned.
type Service struct {
	Queue    repository.QueuedArticleRepository
	Articles repository.ArticleRepository
	Rejected repository.RejectedEntryRepository
	// Events is optional; nil disables event publishing.
	Events EventPublisher
	// Now is optional; it defaults to time.Now in UTC.
	Now func() time.Time
}

// SubmitResult is a stored submission plus any warnings raised while validating it.
type SubmitResult struct {
	Article  *entity.QueuedArticle
	Warnings []string
}

// Patch holds a partial edit of a queued submission. Nil fields are left unchanged.
type Patch struct {
	Title       *string
	Authors     *[]string
	Date        *string
	Journal     *string
	Volume      *string
	Issue       *string
	PageRange   *[]int
	DOI         *string
	Keywords    *[]string
	Abstract    *string
	IsModerated *bool
}

// Duplicate flags a queued submission whose DOI is already known.
type Duplicate struct {
	ID        string `json:"_id"`
	DOI       string `json:"doi"`
	Published bool   `json:"published"`
	Rejected  bool   `json:"rejected"`
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// Submit validates a submission and adds it to the queue as unmoderated.
// Validation failures are returned as entity.ValidationErrors.
func (s *Service) Submit(ctx context.Context, in entity.Submission) (*SubmitResult, error) {
	ctx, span := tracing.StartSpan(ctx, "workflow.Submit")
	defer span.End()
	start := time.Now()
	defer func() { metrics.RecordWorkflowDuration("submit", time.Since(start)) }()

	meta, warnings, err := entity.ValidateSubmission(in)
	if err != nil {
		metrics.RecordSubmission(metrics.ResultInvalid)
		return nil, err
	}

	now := s.now()
	q := &entity.QueuedArticle{
		ID:          entity.NewID(),
		Metadata:    meta,
		IsModerated: false,
		SubmittedAt: now,
		UpdatedAt:   now,
	}
	span.SetAttributes(attribute.String("article.id", q.ID))

	if err := s.Queue.Create(ctx, q); err != nil {
		metrics.RecordSubmission(metrics.ResultError)
		tracing.RecordError(span, err)
		return nil, fmt.Errorf("submit article: %w", err)
	}
	metrics.RecordSubmission(metrics.ResultAccepted)
	s.publish(ctx, entity.WorkflowEvent{Type: entity.EventSubmitted, ArticleID: q.ID, DOI: q.DOI, Title: q.Title})

	return &SubmitResult{Article: q, Warnings: warnings}, nil
}

// ListUnmoderated returns submissions waiting for a moderator, in submission order.
func (s *Service) ListUnmoderated(ctx context.Context) ([]*entity.QueuedArticle, error) {
	out, err := s.Queue.ListByModeration(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list unmoderated articles: %w", err)
	}
	return out, nil
}

// ListModerated returns submissions accepted by a moderator and waiting for an analyst.
func (s *Service) ListModerated(ctx context.Context) ([]*entity.QueuedArticle, error) {
	out, err := s.Queue.ListByModeration(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list moderated articles: %w", err)
	}
	return out, nil
}

// ListRejected returns rejected entries, most recent first.
func (s *Service) ListRejected(ctx context.Context) ([]*entity.RejectedEntry, error) {
	out, err := s.Rejected.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rejected entries: %w", err)
	}
	return out, nil
}

// Get returns one queued submission.
func (s *Service) Get(ctx context.Context, id string) (*entity.QueuedArticle, error) {
	if !entity.IsValidID(id) {
		return nil, ErrInvalidQueuedArticleID
	}
	q, err := s.Queue.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get queued article: %w", err)
	}
	if q == nil {
		return nil, ErrQueuedArticleNotFound
	}
	return q, nil
}

// Update applies a partial edit to a queued submission and re-validates the result.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (*entity.QueuedArticle, []string, error) {
	ctx, span := tracing.StartSpan(ctx, "workflow.Update", attribute.String("article.id", id))
	defer span.End()

	q, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	sub := applyPatch(entity.SubmissionFromMetadata(q.Metadata), patch)
	meta, warnings, err := entity.ValidateSubmission(sub)
	if err != nil {
		return nil, nil, err
	}

	wasModerated := q.IsModerated
	q.Metadata = meta
	if patch.IsModerated != nil {
		q.IsModerated = *patch.IsModerated
	}
	q.UpdatedAt = s.now()

	if err := s.Queue.Update(ctx, q); err != nil {
		tracing.RecordError(span, err)
		return nil, nil, fmt.Errorf("update queued article: %w", err)
	}
	if !wasModerated && q.IsModerated {
		metrics.RecordModeration()
		s.publish(ctx, entity.WorkflowEvent{Type: entity.EventModerated, ArticleID: q.ID, DOI: q.DOI, Title: q.Title})
	}
	return q, warnings, nil
}

// MarkModerated records a moderator accepting a submission. It is idempotent.
func (s *Service) MarkModerated(ctx context.Context, id string) (*entity.QueuedArticle, error) {
	ctx, span := tracing.StartSpan(ctx, "workflow.MarkModerated", attribute.String("article.id", id))
	defer span.End()

	q, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if q.IsModerated {
		return q, nil
	}

	q.IsModerated = true
	q.UpdatedAt = s.now()
	if err := s.Queue.Update(ctx, q); err != nil {
		tracing.RecordError(span, err)
		return nil, fmt.Errorf("mark article moderated: %w", err)
	}
	metrics.RecordModeration()
	s.publish(ctx, entity.WorkflowEvent{Type: entity.EventModerated, ArticleID: q.ID, DOI: q.DOI, Title: q.Title})
	return q, nil
}

// Promote copies a queued submission into the article store and removes it from the queue.
// The published article keeps the queued ID.
func (s *Service) Promote(ctx context.Context, id string) (*entity.Article, error) {
	ctx, span := tracing.StartSpan(ctx, "workflow.Promote", attribute.String("article.id", id))
	defer span.End()
	start := time.Now()
	defer func() { metrics.RecordWorkflowDuration("promote", time.Since(start)) }()

	q, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	article := q.ToArticle(s.now())
	if err := s.Articles.Create(ctx, article); err != nil {
		tracing.RecordError(span, err)
		return nil, fmt.Errorf("promote article: %w", err)
	}
	if err := s.Queue.Delete(ctx, id); err != nil {
		metrics.RecordPartialFailure("promote")
		tracing.RecordError(span, err)
		logging.FromContext(ctx).Error("article published but not removed from queue",
			slog.String("queued_id", id),
			slog.String("article_id", article.ID),
			slog.Any("error", err))
		return nil, fmt.Errorf("remove promoted article from queue: %w", err)
	}

	metrics.RecordPromotion()
	s.publish(ctx, entity.WorkflowEvent{Type: entity.EventPromoted, ArticleID: article.ID, DOI: article.DOI, Title: article.Title})
	return article, nil
}

// Reject removes a queued submission and records its DOI in the rejected store.
func (s *Service) Reject(ctx context.Context, id, reason string, stage entity.RejectionStage) (*entity.RejectedEntry, error) {
	ctx, span := tracing.StartSpan(ctx, "workflow.Reject",
		attribute.String("article.id", id),
		attribute.String("stage", string(stage)))
	defer span.End()
	start := time.Now()
	defer func() { metrics.RecordWorkflowDuration("reject", time.Since(start)) }()

	if stage != entity.StageModerator && stage != entity.StageAnalyst {
		return nil, ErrInvalidStage
	}

	q, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.Queue.Delete(ctx, id); err != nil {
		tracing.RecordError(span, err)
		return nil, fmt.Errorf("reject article: %w", err)
	}

	entry := &entity.RejectedEntry{
		ID:         entity.NewID(),
		DOI:        q.DOI,
		Title:      q.Title,
		Reason:     reason,
		Stage:      stage,
		RejectedAt: s.now(),
	}
	if err := s.Rejected.Create(ctx, entry); err != nil {
		metrics.RecordPartialFailure("reject")
		tracing.RecordError(span, err)
		logging.FromContext(ctx).Error("article removed from queue but rejection not recorded",
			slog.String("queued_id", id),
			slog.String("rejected_id", entry.ID),
			slog.String("doi", q.DOI),
			slog.Any("error", err))
		return nil, fmt.Errorf("record rejection: %w", err)
	}

	metrics.RecordRejection(string(stage))
	s.publish(ctx, entity.WorkflowEvent{
		Type: entity.EventRejected, ArticleID: q.ID, DOI: q.DOI, Title: q.Title,
		Stage: stage, Reason: reason,
	})
	return entry, nil
}

// Duplicates reports queued submissions whose DOI is already published or rejected.
func (s *Service) Duplicates(ctx context.Context, queued []*entity.QueuedArticle) ([]Duplicate, error) {
	out := make([]Duplicate, 0)
	if len(queued) == 0 {
		return out, nil
	}

	dois := make([]string, 0, len(queued))
	for _, q := range queued {
		dois = append(dois, q.DOI)
	}

	published, err := s.Articles.ExistsByDOIBatch(ctx, dois)
	if err != nil {
		return nil, fmt.Errorf("check published DOIs: %w", err)
	}
	rejected, err := s.Rejected.ExistsByDOIBatch(ctx, dois)
	if err != nil {
		return nil, fmt.Errorf("check rejected DOIs: %w", err)
	}

	for _, q := range queued {
		if published[q.DOI] || rejected[q.DOI] {
			out = append(out, Duplicate{ID: q.ID, DOI: q.DOI, Published: published[q.DOI], Rejected: rejected[q.DOI]})
		}
	}
	return out, nil
}

func (s *Service) publish(ctx context.Context, event entity.WorkflowEvent) {
	if s.Events == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = s.now()
	}
	err := s.Events.Publish(ctx, event)
	metrics.RecordEventPublished(string(event.Type), err == nil)
	if err != nil {
		logging.FromContext(ctx).Warn("failed to publish workflow event",
			slog.String("type", string(event.Type)),
			slog.String("article_id", event.ArticleID),
			slog.Any("error", err))
	}
}

func applyPatch(sub entity.Submission, p Patch) entity.Submission {
	if p.Title != nil {
		sub.Title = *p.Title
	}
	if p.Authors != nil {
		sub.Authors = *p.Authors
	}
	if p.Date != nil {
		sub.Date = *p.Date
	}
	if p.Journal != nil {
		sub.Journal = *p.Journal
	}
	if p.Volume != nil {
		sub.Volume = *p.Volume
	}
	if p.Issue != nil {
		sub.Issue = *p.Issue
	}
	if p.PageRange != nil {
		sub.PageRange = *p.PageRange
	}
	if p.DOI != nil {
		sub.DOI = *p.DOI
	}
	if p.Keywords != nil {
		sub.Keywords = *p.Keywords
	}
	if p.Abstract != nil {
		sub.Abstract = *p.Abstract
	}
	return sub
}
