// Package reconcile merges a window of provider events into the locally
// owned task collection.
//
// Reconcile is a pure function of its inputs: it performs no I/O, owns no
// state, and never mutates its arguments. One pass runs drop phase, then
// upsert phase in provider order, then a stable sort, and finally rebuilds
// the snapshot map from the batch. For a fixed input the output is
// deterministic.
package reconcile

import (
	"sort"
	"time"

	"github.com/jwoolee/timsync/pkg/hydrate"
	"github.com/jwoolee/timsync/pkg/model"
	"github.com/jwoolee/timsync/pkg/snapshot"
	"github.com/jwoolee/timsync/pkg/tombstone"
)

// Window is the time range within which the provider is authoritative for
// presence and absence of events.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// WindowAround builds the sync window spanning pastDays before now (from
// start of day) through futureDays after now (to end of day).
func WindowAround(now time.Time, pastDays, futureDays int) Window {
	y, m, d := now.AddDate(0, 0, -pastDays).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	y, m, d = now.AddDate(0, 0, futureDays).Date()
	end := time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), now.Location())
	return Window{Start: start, End: end}
}

// Input is everything one reconciliation pass depends on. The caller owns
// persistence of Tasks, Snapshots and Tombstones between passes.
type Input struct {
	Tasks      []model.Task
	Batch      []model.ExternalEvent
	Snapshots  snapshot.Map
	Tombstones tombstone.Set
	// Classified holds one classification per batch event id. Events without
	// an entry fall into the default weekly bucket.
	Classified map[string]model.Classification
	Window     Window
	Now        time.Time
}

// Reconcile folds the batch into the task collection and returns the next
// collection plus the next snapshot map.
func Reconcile(in Input) ([]model.Task, snapshot.Map) {
	batchIDs := make(map[string]struct{}, len(in.Batch))
	for _, ev := range in.Batch {
		batchIDs[ev.ID] = struct{}{}
	}

	// Drop phase: inside the window the provider is authoritative for
	// deletions. Local-only tasks, tasks outside the window, and user-edited
	// tasks are never dropped.
	next := make([]model.Task, 0, len(in.Tasks)+len(in.Batch))
	for i := range in.Tasks {
		t := in.Tasks[i].Clone()
		if t.ExternalID != "" && !t.UserEdited && in.Window.Contains(t.Start) {
			if _, present := batchIDs[t.ExternalID]; !present {
				continue
			}
		}
		next = append(next, t)
	}

	// Upsert phase, in provider order.
	for _, ev := range in.Batch {
		if in.Tombstones.Contains(ev.ID) {
			continue
		}
		start, err := model.ParseEventTime(ev.Start)
		if err != nil {
			// Malformed event: neither created nor used to update.
			continue
		}
		end := parseEnd(ev.End)

		cls, classified := in.Classified[ev.ID]
		cat := resolveCategory(cls.Category)
		title := ev.Title
		if title == "" {
			title = "(No Title)"
		}
		var hints *model.Classification
		if classified {
			hints = &cls
		}

		idx := indexByExternalID(next, ev.ID)
		if idx < 0 {
			t := model.Task{
				ID:           "gcal-" + ev.ID,
				Title:        title,
				Description:  ev.Description,
				Start:        start,
				End:          end,
				Category:     cat,
				SubCategory:  cls.SubCategory,
				ExternalID:   ev.ID,
				LastSyncedAt: in.Now,
			}
			hydrate.Apply(&t, hints)
			next = append(next, t)
			continue
		}

		t := &next[idx]
		switch {
		case t.UserEdited:
			// User content is untouchable; only sync bookkeeping moves, and
			// an end date only when the user never had one.
			t.LastSyncedAt = in.Now
			if t.End == nil && end != nil {
				t.End = end
			}
		case t.HasDetails():
			// Hydrated content is locally stabilized even without a user
			// edit; provider text no longer overwrites it.
			t.LastSyncedAt = in.Now
			if end != nil {
				t.End = end
			}
		default:
			changed := in.Snapshots.Changed(ev.ID, ev.Title, ev.Description, ev.Start)
			t.Title = title
			t.Description = ev.Description
			t.Start = start
			t.End = end
			t.Category = cat
			t.SubCategory = cls.SubCategory
			t.LastSyncedAt = in.Now
			// Drift persists until the caller dismisses it.
			t.Drift = t.Drift || changed
			hydrate.Apply(t, hints)
		}
	}

	sort.SliceStable(next, func(i, j int) bool {
		return next[i].Start.Before(next[j].Start)
	})

	return next, snapshot.Rebuild(in.Batch)
}

// resolveCategory maps the classifier vocabulary to the board vocabulary.
// The sync engine already remaps the music-work pseudo-category; this guards
// against callers that hand the reconciler raw classifications.
func resolveCategory(c model.Category) model.Category {
	if c == "" || c == model.CategoryMusic {
		return model.CategoryWeekly
	}
	return c
}

func parseEnd(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := model.ParseEventTime(raw)
	if err != nil {
		return nil
	}
	return &t
}

func indexByExternalID(tasks []model.Task, id string) int {
	for i := range tasks {
		if tasks[i].ExternalID == id {
			return i
		}
	}
	return -1
}
