// Package tombstone remembers provider event ids the user has deleted
// locally, so a sync pass never resurrects them. The set is append-only;
// only an explicit reset clears it.
package tombstone

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/natefinch/atomic"
)

// Set is an in-memory tombstone set usable directly as a reconciler input.
type Set map[string]struct{}

// NewSet builds a set from external ids.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id has been tombstoned.
func (s Set) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

const fileName = "tombstones.json"

// Store persists the set across sessions. The on-disk form is a sorted JSON
// array of ids.
type Store struct {
	mu    sync.RWMutex
	set   Set
	path  string
	dirty bool
}

// Open loads the tombstone set from dir, starting empty if no file exists.
func Open(dir string) (*Store, error) {
	s := &Store{set: Set{}, path: filepath.Join(dir, fileName)}

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	defer f.Close()

	var ids []string
	if err := json.NewDecoder(f).Decode(&ids); err != nil {
		return nil, err
	}
	s.set = NewSet(ids...)
	return s, nil
}

// Record marks an external id as deleted by the user.
func (s *Store) Record(id string) {
	if id == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.set[id]; !ok {
		s.set[id] = struct{}{}
		s.dirty = true
	}
}

// IsTombstoned reports whether id was deleted by the user.
func (s *Store) IsTombstoned(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.Contains(id)
}

// Current returns a copy of the set for use as a reconciler input.
func (s *Store) Current() Set {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(Set, len(s.set))
	for id := range s.set {
		out[id] = struct{}{}
	}
	return out
}

// Reset clears the set. This is the one sanctioned way tombstones go away.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.set) > 0 {
		s.set = Set{}
		s.dirty = true
	}
}

// Save writes the set atomically when it changed since the last save.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return nil
	}

	ids := make([]string, 0, len(s.set))
	for id := range s.set {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ids); err != nil {
		return err
	}
	if err := atomic.WriteFile(s.path, &buf); err != nil {
		return err
	}
	s.dirty = false
	return nil
}
