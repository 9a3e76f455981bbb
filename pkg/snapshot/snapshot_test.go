package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwoolee/timsync/pkg/model"
)

func TestChanged(t *testing.T) {
	m := Map{"e1": {Title: "a", Description: "b", Start: "2025-06-01"}}

	// First sighting is a creation, not a change.
	assert.False(t, m.Changed("unknown", "a", "b", "2025-06-01"))

	assert.False(t, m.Changed("e1", "a", "b", "2025-06-01"))
	assert.True(t, m.Changed("e1", "A", "b", "2025-06-01"))
	assert.True(t, m.Changed("e1", "a", "B", "2025-06-01"))
	assert.True(t, m.Changed("e1", "a", "b", "2025-06-02"))
}

func TestRebuildReplacesWholesale(t *testing.T) {
	batch := []model.ExternalEvent{
		{ID: "e1", Title: "one", Start: "2025-06-01"},
		{ID: "e2", Title: "two", Description: "d", Start: "2025-06-02"},
	}
	m := Rebuild(batch)
	assert.Len(t, m, 2)
	assert.Equal(t, model.Snapshot{Title: "two", Description: "d", Start: "2025-06-02"}, m["e2"])

	// Ids absent from the next batch are not carried forward.
	next := Rebuild(batch[:1])
	assert.Len(t, next, 1)
	_, ok := next["e2"]
	assert.False(t, ok)
}

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	assert.Empty(t, s.Current())

	s.Replace(Map{"e1": {Title: "one", Start: "2025-06-01"}})
	require.NoError(t, s.Save())

	reopened, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, s.Current(), reopened.Current())
}

func TestCurrentReturnsCopy(t *testing.T) {
	s := &Store{m: Map{"e1": {Title: "one"}}}
	got := s.Current()
	got["e2"] = model.Snapshot{}
	assert.Len(t, s.Current(), 1)
}
