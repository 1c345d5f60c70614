package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"board_syncer/internal/config"
	"board_syncer/internal/domain"
)

// ErrPrecondition is returned when a load is requested in a state the caller
// should have ruled out: a sync before the board was bootstrapped, or a second
// bootstrap.
var ErrPrecondition = errors.New("precondition failed")

// Engine keeps a Display in step with a board Source.
//
// Only one Bootstrap or Sync runs at a time. A call made while another one is
// in flight returns immediately with OutcomeSkipped; it is not queued.
type Engine struct {
	source    Source
	display   Display
	formatter Formatter
	input     InputSurface
	reporter  FailureReporter
	listeners []AppendListener
	logger    *slog.Logger
	config    config.SyncConfig

	updating atomic.Bool
}

func NewEngine(
	source Source,
	display Display,
	formatter Formatter,
	input InputSurface,
	reporter FailureReporter,
	logger *slog.Logger,
	cfg config.SyncConfig,
	listeners ...AppendListener,
) *Engine {
	return &Engine{
		source:    source,
		display:   display,
		formatter: formatter,
		input:     input,
		reporter:  reporter,
		listeners: listeners,
		logger:    logger.With("board", source.ID()),
		config:    cfg,
	}
}

// Bootstrap fills an empty display with the latest batch of posts.
// Transport failures are reported, not returned.
func (e *Engine) Bootstrap(ctx context.Context) (*domain.SyncStats, error) {
	startTime := time.Now()
	stats := &domain.SyncStats{Board: e.source.ID()}

	if !e.updating.CompareAndSwap(false, true) {
		e.logger.Debug("update in progress, skipping bootstrap")
		stats.Outcome = domain.OutcomeSkipped
		return stats, nil
	}
	defer e.updating.Store(false)

	if last, ok := e.display.LastID(); ok {
		return nil, fmt.Errorf("bootstrap: display already shows post %s: %w", last, ErrPrecondition)
	}

	posts, err := e.source.FetchLatest(ctx)
	if err != nil {
		e.reportFailure("bootstrap", err)
		stats.Outcome = domain.OutcomeFailed
		stats.Duration = time.Since(startTime)
		return stats, nil
	}

	stats.Fetched = len(posts)
	batch := ascending(posts)
	stats.Ignored = len(posts) - len(batch)

	if len(batch) > 0 {
		e.apply(ctx, batch, stats)
	} else {
		stats.Outcome = domain.OutcomeEmpty
	}
	e.input.Reset()

	stats.Duration = time.Since(startTime)
	e.logger.Info("bootstrap completed",
		"fetched", stats.Fetched,
		"appended", stats.Appended,
		"sink_errors", stats.SinkErrors,
		"duration", stats.Duration,
	)

	return stats, nil
}

// Sync appends the posts published since the last displayed one.
// Transport failures are reported, not returned; an empty display is an
// ErrPrecondition.
func (e *Engine) Sync(ctx context.Context) (*domain.SyncStats, error) {
	startTime := time.Now()
	stats := &domain.SyncStats{Board: e.source.ID()}

	if !e.updating.CompareAndSwap(false, true) {
		e.logger.Debug("update in progress, skipping sync")
		stats.Outcome = domain.OutcomeSkipped
		return stats, nil
	}
	defer e.updating.Store(false)

	marker, ok := e.display.LastID()
	if !ok {
		return nil, fmt.Errorf("sync: display is empty, bootstrap first: %w", ErrPrecondition)
	}
	stats.Marker = marker

	posts, err := e.source.FetchSince(ctx, marker)
	if err != nil {
		e.reportFailure("sync", err)
		stats.Outcome = domain.OutcomeFailed
		stats.Duration = time.Since(startTime)
		return stats, nil
	}
	stats.Fetched = len(posts)

	fresh, found := Reconcile(marker, posts)
	if !found && len(posts) > 0 {
		stats.Recovered = true
		e.logger.Warn("marker post missing from response, appending all posts",
			"marker", marker,
			"fetched", len(posts),
		)
		if e.config.DedupeOnRecovery {
			fresh = withoutDisplayed(fresh, e.display)
		}
	}
	stats.Ignored = len(posts) - len(fresh)

	if len(fresh) == 0 {
		stats.Outcome = domain.OutcomeEmpty
		stats.Duration = time.Since(startTime)
		e.logger.Debug("no new posts", "marker", marker, "fetched", stats.Fetched)
		return stats, nil
	}

	e.apply(ctx, fresh, stats)
	e.input.Reset()

	stats.Duration = time.Since(startTime)
	e.logger.Info("sync completed",
		"marker", marker,
		"fetched", stats.Fetched,
		"appended", stats.Appended,
		"ignored", stats.Ignored,
		"recovered", stats.Recovered,
		"sink_errors", stats.SinkErrors,
		"duration", stats.Duration,
	)

	return stats, nil
}

// Updating reports whether a bootstrap or sync is in flight.
func (e *Engine) Updating() bool {
	return e.updating.Load()
}

func (e *Engine) apply(ctx context.Context, posts []domain.Post, stats *domain.SyncStats) {
	fragments := make([]domain.Fragment, len(posts))
	for i, p := range posts {
		fragments[i] = e.formatter.Format(p)
	}

	e.display.Append(posts, fragments)
	stats.Appended = len(posts)
	stats.Outcome = domain.OutcomeApplied

	for _, l := range e.listeners {
		if err := l.PostsAppended(ctx, stats.Board, posts); err != nil {
			stats.SinkErrors++
			e.logger.Error("append listener failed", "error", err)
		}
	}
}

func (e *Engine) reportFailure(operation string, err error) {
	var te *domain.TransportError
	if !errors.As(err, &te) {
		te = &domain.TransportError{Message: operation + " failed", Err: err}
	}
	e.reporter.ReportFailure(operation, te)
}
