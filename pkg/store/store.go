// Package store persists the task collection and pitching ideas between
// sync passes and exposes the local edit operations the boards rely on.
//
// Every mutation here is a user action: it marks the task user-edited where
// the spec requires it and records tombstones on deletion so the reconciler
// honors both on the next pass.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/natefinch/atomic"

	"github.com/jwoolee/timsync/pkg/model"
)

const (
	tasksFile    = "tasks.json"
	pitchingFile = "pitching.json"
)

// ErrNotFound is returned when no task or idea has the given id.
var ErrNotFound = errors.New("store: not found")

// Store owns the on-disk task collection. All methods are safe for
// concurrent use, though sync passes themselves never interleave.
type Store struct {
	mu            sync.Mutex
	tasks         []model.Task
	pitching      []model.PitchingIdea
	dir           string
	dirtyTasks    bool
	dirtyPitching bool
}

// Open loads the store from dir, starting empty when files are missing.
func Open(dir string) (*Store, error) {
	s := &Store{dir: dir}
	if err := loadJSON(filepath.Join(dir, tasksFile), &s.tasks); err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	if err := loadJSON(filepath.Join(dir, pitchingFile), &s.pitching); err != nil {
		return nil, fmt.Errorf("loading pitching ideas: %w", err)
	}
	return s, nil
}

func loadJSON(path string, v interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(v)
}

// Tasks returns a deep copy of the collection, safe to hand to the
// reconciler.
func (s *Store) Tasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Task, len(s.tasks))
	for i := range s.tasks {
		out[i] = s.tasks[i].Clone()
	}
	return out
}

// ReplaceTasks swaps in the collection produced by a sync pass.
func (s *Store) ReplaceTasks(tasks []model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
	s.dirtyTasks = true
}

// AddTask inserts a locally created task. It gets a fresh id when none is
// set and is user-edited from creation, so sync never overwrites it.
func (s *Store) AddTask(t model.Task) model.Task {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.UserEdited = true
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, t)
	s.dirtyTasks = true
	return t
}

// UpdateTask applies fn to the task with the given id. Any update marks the
// task user-edited and clears drift: the user has seen the current content.
func (s *Store) UpdateTask(id string, fn func(*model.Task)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		fn(&s.tasks[i])
		s.tasks[i].UserEdited = true
		s.tasks[i].Drift = false
		s.dirtyTasks = true
		return nil
	}
	return ErrNotFound
}

// DeleteTask removes a task and returns its external id ("" for local-only
// tasks) so the caller can tombstone it.
func (s *Store) DeleteTask(id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		externalID := s.tasks[i].ExternalID
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
		s.dirtyTasks = true
		return externalID, nil
	}
	return "", ErrNotFound
}

// ToggleStar flips the star without counting as a content edit.
func (s *Store) ToggleStar(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Starred = !s.tasks[i].Starred
			s.dirtyTasks = true
			return nil
		}
	}
	return ErrNotFound
}

// DismissDrift clears the drift flag. This is the only way it goes away.
func (s *Store) DismissDrift(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Drift = false
			s.dirtyTasks = true
			return nil
		}
	}
	return ErrNotFound
}

// MoveHoldFixType moves a hold/fix task to another column. Tasks of other
// categories are left alone.
func (s *Store) MoveHoldFixType(id string, typ model.HoldFixType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		if s.tasks[i].HoldFix == nil {
			return fmt.Errorf("task %s has no hold/fix details", id)
		}
		s.tasks[i].HoldFix.Type = typ
		s.dirtyTasks = true
		return nil
	}
	return ErrNotFound
}

// Save writes whichever files changed, atomically.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dirtyTasks {
		if err := s.writeJSON(tasksFile, s.tasks); err != nil {
			return fmt.Errorf("saving tasks: %w", err)
		}
		s.dirtyTasks = false
	}
	if s.dirtyPitching {
		if err := s.writeJSON(pitchingFile, s.pitching); err != nil {
			return fmt.Errorf("saving pitching ideas: %w", err)
		}
		s.dirtyPitching = false
	}
	return nil
}

func (s *Store) writeJSON(name string, v interface{}) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	return atomic.WriteFile(filepath.Join(s.dir, name), &buf)
}
