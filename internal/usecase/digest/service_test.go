package digest_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speed/internal/domain/entity"
	"speed/internal/infra/notifier"
	"speed/internal/observability/metrics"
	"speed/internal/repository"
	"speed/internal/usecase/digest"
)

/* ───────── スタブ ───────── */

type countQueue struct {
	repository.QueuedArticleRepository
	counts repository.QueueCounts
	err    error
}

func (c countQueue) CountByModeration(context.Context) (repository.QueueCounts, error) {
	return c.counts, c.err
}

type countArticles struct {
	repository.ArticleRepository
	n int64
}

func (c countArticles) CountArticles(context.Context) (int64, error) { return c.n, nil }

type countRejected struct {
	repository.RejectedEntryRepository
	n int64
}

func (c countRejected) CountRejected(context.Context) (int64, error) { return c.n, nil }

type fakeNotifier struct {
	name string
	err  error
	got  []entity.QueueDigest
}

func (f *fakeNotifier) Name() string { return f.name }
func (f *fakeNotifier) NotifyDigest(_ context.Context, d entity.QueueDigest) error {
	f.got = append(f.got, d)
	return f.err
}

var fixedNow = time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)

func newService(q repository.QueueCounts, notifiers ...notifier.Notifier) *digest.Service {
	return &digest.Service{
		Queue:     countQueue{counts: q},
		Articles:  countArticles{n: 40},
		Rejected:  countRejected{n: 3},
		Notifiers: notifiers,
		Now:       func() time.Time { return fixedNow },
	}
}

/* ───────── テスト ───────── */

func TestSnapshot(t *testing.T) {
	svc := newService(repository.QueueCounts{Unmoderated: 5, Moderated: 1})

	d, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.QueueDigest{
		Unmoderated: 5, Moderated: 1, Articles: 40, Rejected: 3, GeneratedAt: fixedNow,
	}, d)
	assert.EqualValues(t, 6, d.Backlog())
}

func TestRun_SendsToEveryChannel(t *testing.T) {
	slack := &fakeNotifier{name: "slack"}
	discord := &fakeNotifier{name: "discord"}
	svc := newService(repository.QueueCounts{Unmoderated: 2}, slack, discord)

	_, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, slack.got, 1)
	assert.Len(t, discord.got, 1)
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.QueueSize.WithLabelValues("unmoderated")))
	assert.Equal(t, 40.0, testutil.ToFloat64(metrics.ArticlesTotal))
}

func TestRun_EmptyQueueSkipsNotification(t *testing.T) {
	slack := &fakeNotifier{name: "slack"}
	svc := newService(repository.QueueCounts{}, slack)

	before := testutil.ToFloat64(metrics.DigestRunsTotal.WithLabelValues(digest.ResultSkipped))
	_, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, slack.got)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.DigestRunsTotal.WithLabelValues(digest.ResultSkipped)))
}

func TestRun_ChannelFailureDoesNotStopOthers(t *testing.T) {
	hookErr := errors.New("webhook 404")
	slack := &fakeNotifier{name: "slack", err: hookErr}
	discord := &fakeNotifier{name: "discord"}
	svc := newService(repository.QueueCounts{Moderated: 1}, slack, discord)

	_, err := svc.Run(context.Background())
	assert.ErrorIs(t, err, hookErr)
	assert.Len(t, discord.got, 1)
}

func TestRun_CountFailure(t *testing.T) {
	dbErr := errors.New("connection reset")
	svc := newService(repository.QueueCounts{})
	svc.Queue = countQueue{err: dbErr}

	_, err := svc.Run(context.Background())
	assert.ErrorIs(t, err, dbErr)
}
