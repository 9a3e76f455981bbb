// Package snapshot tracks the last-seen content of provider events so the
// reconciler can tell an upstream edit from a first sighting.
package snapshot

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/natefinch/atomic"

	"github.com/jwoolee/timsync/pkg/model"
)

// Map holds one snapshot per external event id.
type Map map[string]model.Snapshot

// Changed reports whether a prior snapshot exists for id and any of the three
// observed fields differs. No prior snapshot is a creation, not a change.
func (m Map) Changed(id, title, description, start string) bool {
	prev, ok := m[id]
	if !ok {
		return false
	}
	return prev.Title != title || prev.Description != description || prev.Start != start
}

// Rebuild derives a fresh map from the current batch. The result replaces the
// stored map in full: ids absent from the batch are not carried forward.
func Rebuild(batch []model.ExternalEvent) Map {
	next := make(Map, len(batch))
	for _, ev := range batch {
		next[ev.ID] = model.SnapshotOf(ev)
	}
	return next
}

const fileName = "snapshots.json"

// Store persists a Map between sync passes.
type Store struct {
	mu   sync.RWMutex
	m    Map
	path string
}

// Open loads the snapshot map from dir, starting empty if no file exists.
func Open(dir string) (*Store, error) {
	s := &Store{m: Map{}, path: filepath.Join(dir, fileName)}

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&s.m); err != nil {
		return nil, err
	}
	return s, nil
}

// Current returns a copy of the stored map for use as a reconciler input.
func (s *Store) Current() Map {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(Map, len(s.m))
	for k, v := range s.m {
		out[k] = v
	}
	return out
}

// Replace swaps in the map produced by a sync pass.
func (s *Store) Replace(next Map) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m = next
}

// Reset drops all snapshots.
func (s *Store) Reset() {
	s.Replace(Map{})
}

// Save writes the map atomically.
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.m); err != nil {
		return err
	}
	return atomic.WriteFile(s.path, &buf)
}
