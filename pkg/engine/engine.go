// Package engine runs one calendar sync pass end to end: classify the
// fetched batch, then reconcile it into the task collection.
//
// Passes are cooperative: the caller runs one pass to completion before
// starting another, and owns persistence of every input and output.
package engine

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jwoolee/timsync/pkg/classify"
	"github.com/jwoolee/timsync/pkg/model"
	"github.com/jwoolee/timsync/pkg/reconcile"
	"github.com/jwoolee/timsync/pkg/snapshot"
	"github.com/jwoolee/timsync/pkg/tombstone"
)

// Engine classifies and reconciles sync batches.
type Engine struct {
	classifier *classify.Service
	log        *zap.Logger

	pastDays   int
	futureDays int

	// now is swappable for tests.
	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithWindow overrides the default sync window of 5 days back, 14 ahead.
func WithWindow(pastDays, futureDays int) Option {
	return func(e *Engine) {
		if pastDays > 0 {
			e.pastDays = pastDays
		}
		if futureDays > 0 {
			e.futureDays = futureDays
		}
	}
}

// WithClock overrides the engine's time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New builds an Engine around a classification service.
func New(classifier *classify.Service, log *zap.Logger, opts ...Option) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		classifier: classifier,
		log:        log,
		pastDays:   5,
		futureDays: 14,
		now:        time.Now,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Window returns the current sync window. The provider fetch should use the
// same bounds the reconciler will treat as authoritative.
func (e *Engine) Window() reconcile.Window {
	return reconcile.WindowAround(e.now(), e.pastDays, e.futureDays)
}

// Result is the output of one pass, ready to persist.
type Result struct {
	Tasks     []model.Task
	Snapshots snapshot.Map
}

// Sync runs one pass over an already fetched batch. Classification calls are
// issued concurrently and awaited together, so one slow or failing call
// degrades only its own event; every other failure mode lives with the
// caller (fetch before, persistence after).
func (e *Engine) Sync(ctx context.Context, tasks []model.Task, batch []model.ExternalEvent,
	snaps snapshot.Map, tombs tombstone.Set) Result {

	classified := e.classifyBatch(ctx, batch, tombs)

	next, nextSnaps := reconcile.Reconcile(reconcile.Input{
		Tasks:      tasks,
		Batch:      batch,
		Snapshots:  snaps,
		Tombstones: tombs,
		Classified: classified,
		Window:     e.Window(),
		Now:        e.now(),
	})

	e.log.Info("sync pass complete",
		zap.Int("events", len(batch)),
		zap.Int("tasks_before", len(tasks)),
		zap.Int("tasks_after", len(next)))

	return Result{Tasks: next, Snapshots: nextSnaps}
}

// classifyBatch fans classification out per event and fans the results back
// in, keyed by event id. Tombstoned ids are skipped up front: they can never
// become tasks, so their events are not worth a model call. The music-work
// pseudo-category is remapped to the weekly bucket here, at the boundary
// between classifier vocabulary and board vocabulary.
func (e *Engine) classifyBatch(ctx context.Context, batch []model.ExternalEvent,
	tombs tombstone.Set) map[string]model.Classification {

	results := make([]model.Classification, len(batch))
	skip := make([]bool, len(batch))

	var wg sync.WaitGroup
	for i, ev := range batch {
		if tombs.Contains(ev.ID) {
			skip[i] = true
			continue
		}
		wg.Add(1)
		go func(i int, ev model.ExternalEvent) {
			defer wg.Done()
			title := ev.Title
			if title == "" {
				title = "(No Title)"
			}
			results[i] = e.classifier.Classify(ctx, title, ev.Description)
		}(i, ev)
	}
	wg.Wait()

	out := make(map[string]model.Classification, len(batch))
	for i, ev := range batch {
		if skip[i] {
			continue
		}
		cls := results[i]
		if cls.Category == model.CategoryMusic {
			cls.Category = model.CategoryWeekly
		}
		out[ev.ID] = cls
	}
	return out
}
