// Package importer bulk-loads article submissions from a JSON array into the
// moderation queue. The file is streamed with jstream, so one record is held
// in memory at a time regardless of file size.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/bcicen/jstream"

	"speed/internal/domain/entity"
	"speed/internal/observability/metrics"
	"speed/internal/usecase/workflow"
)

// ErrNotObject is reported for array elements that are not JSON objects.
var ErrNotObject = errors.New("record is not a JSON object")

// Submitter queues one validated submission.
type Submitter interface {
	Submit(ctx context.Context, in entity.Submission) (*workflow.SubmitResult, error)
}

// RecordError describes why one record was not queued.
type RecordError struct {
	Index int
	Err   error
}

func (e RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

// Report summarises an import run.
type Report struct {
	Queued  int
	Invalid int
	Failed  int
	Errors  []RecordError
}

// Importer streams records into a Submitter.
type Importer struct {
	Submitter Submitter
	// DryRun validates records without queueing them.
	DryRun bool
}

// Import reads a top-level JSON array of submissions from r.
// Invalid records are counted and skipped; a storage failure or malformed
// JSON stops the run and is returned alongside the partial report.
func (im *Importer) Import(ctx context.Context, r io.Reader) (Report, error) {
	var rep Report
	src := &stopReader{r: r}
	dec := jstream.NewDecoder(src, 1)
	stream := dec.Stream()
	// The decoder goroutine blocks on send until the stream is consumed, so an
	// early return cuts off its input and drains what is already in flight.
	defer func() {
		src.stop()
		for range stream {
		}
	}()

	index := 0
	for mv := range stream {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		i := index
		index++

		obj, ok := mv.Value.(map[string]interface{})
		if !ok {
			rep.invalid(i, ErrNotObject)
			continue
		}
		sub := toSubmission(obj)

		if im.DryRun {
			if _, _, err := entity.ValidateSubmission(sub); err != nil {
				rep.invalid(i, err)
				continue
			}
			rep.Queued++
			continue
		}

		if _, err := im.Submitter.Submit(ctx, sub); err != nil {
			if errors.Is(err, entity.ErrValidationFailed) {
				rep.invalid(i, err)
				continue
			}
			rep.Failed++
			rep.Errors = append(rep.Errors, RecordError{Index: i, Err: err})
			metrics.RecordImportedRecord(metrics.ResultError)
			return rep, fmt.Errorf("import record %d: %w", i, err)
		}
		rep.Queued++
		metrics.RecordImportedRecord("queued")
	}
	if err := dec.Err(); err != nil {
		return rep, fmt.Errorf("decode import file: %w", err)
	}

	slog.Info("import finished",
		slog.Int("queued", rep.Queued),
		slog.Int("invalid", rep.Invalid),
		slog.Bool("dry_run", im.DryRun))
	return rep, nil
}

// stopReader reports EOF once stopped. jstream treats any other read error as fatal.
type stopReader struct {
	r       io.Reader
	stopped atomic.Bool
}

func (s *stopReader) Read(p []byte) (int, error) {
	if s.stopped.Load() {
		return 0, io.EOF
	}
	return s.r.Read(p)
}

func (s *stopReader) stop() { s.stopped.Store(true) }

func (rep *Report) invalid(index int, err error) {
	rep.Invalid++
	rep.Errors = append(rep.Errors, RecordError{Index: index, Err: err})
	metrics.RecordImportedRecord(metrics.ResultInvalid)
}

// toSubmission maps a loosely typed record onto the form fields. Numbers may
// be given as JSON numbers or strings; authors and keywords may be arrays or
// comma-separated strings.
func toSubmission(obj map[string]interface{}) entity.Submission {
	return entity.Submission{
		Title:     text(obj["title"]),
		Authors:   list(obj["authors"]),
		Date:      text(obj["date"]),
		Journal:   text(obj["journal"]),
		Volume:    text(obj["volume"]),
		Issue:     text(obj["issue"]),
		PageRange: pages(obj["pageRange"]),
		DOI:       text(obj["doi"]),
		Keywords:  list(obj["keywords"]),
		Abstract:  text(obj["abstract"]),
	}
}

func text(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

func list(v interface{}) []string {
	switch t := v.(type) {
	case string:
		return strings.Split(t, ",")
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, text(item))
		}
		return out
	default:
		return nil
	}
}

func pages(v interface{}) []int {
	arr, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]int, 0, len(arr))
	for _, item := range arr {
		switch n := item.(type) {
		case float64:
			out = append(out, int(n))
		case string:
			p, _ := strconv.Atoi(strings.TrimSpace(n))
			out = append(out, p)
		default:
			out = append(out, 0)
		}
	}
	return out
}
