package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwoolee/timsync/pkg/model"
)

func openEmpty(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	return s, dir
}

func TestOpenMissingFilesStartsEmpty(t *testing.T) {
	s, _ := openEmpty(t)
	assert.Empty(t, s.Tasks())
	assert.Empty(t, s.PitchingIdeas())
}

func TestAddTaskAssignsIDAndUserEdited(t *testing.T) {
	s, _ := openEmpty(t)

	got := s.AddTask(model.Task{Title: "local note", Category: model.CategoryPersonal})
	assert.NotEmpty(t, got.ID)
	assert.True(t, got.UserEdited)

	kept := s.AddTask(model.Task{ID: "my-id", Title: "keeps id"})
	assert.Equal(t, "my-id", kept.ID)
}

func TestUpdateTaskMarksUserEditedAndClearsDrift(t *testing.T) {
	s, _ := openEmpty(t)
	s.ReplaceTasks([]model.Task{{ID: "t1", Title: "synced", ExternalID: "e1", Drift: true}})

	err := s.UpdateTask("t1", func(task *model.Task) {
		task.Title = "edited"
	})
	require.NoError(t, err)

	got := s.Tasks()[0]
	assert.Equal(t, "edited", got.Title)
	assert.True(t, got.UserEdited)
	assert.False(t, got.Drift)

	assert.ErrorIs(t, s.UpdateTask("nope", func(*model.Task) {}), ErrNotFound)
}

func TestDeleteTaskReturnsExternalID(t *testing.T) {
	s, _ := openEmpty(t)
	s.ReplaceTasks([]model.Task{
		{ID: "t1", ExternalID: "e1"},
		{ID: "t2"},
	})

	externalID, err := s.DeleteTask("t1")
	require.NoError(t, err)
	assert.Equal(t, "e1", externalID)

	externalID, err = s.DeleteTask("t2")
	require.NoError(t, err)
	assert.Empty(t, externalID)

	assert.Empty(t, s.Tasks())
	_, err = s.DeleteTask("t1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToggleStarIsNotAContentEdit(t *testing.T) {
	s, _ := openEmpty(t)
	s.ReplaceTasks([]model.Task{{ID: "t1", ExternalID: "e1"}})

	require.NoError(t, s.ToggleStar("t1"))
	got := s.Tasks()[0]
	assert.True(t, got.Starred)
	assert.False(t, got.UserEdited)

	require.NoError(t, s.ToggleStar("t1"))
	assert.False(t, s.Tasks()[0].Starred)
}

func TestDismissDrift(t *testing.T) {
	s, _ := openEmpty(t)
	s.ReplaceTasks([]model.Task{{ID: "t1", Drift: true}})

	require.NoError(t, s.DismissDrift("t1"))
	got := s.Tasks()[0]
	assert.False(t, got.Drift)
	// Dismissing is acknowledgement, not an edit.
	assert.False(t, got.UserEdited)
}

func TestMoveHoldFixType(t *testing.T) {
	s, _ := openEmpty(t)
	s.ReplaceTasks([]model.Task{
		{ID: "t1", Category: model.CategoryHoldFix, HoldFix: &model.HoldFixDetails{Type: model.HoldFixHold}},
		{ID: "t2", Category: model.CategoryWeekly},
	})

	require.NoError(t, s.MoveHoldFixType("t1", model.HoldFixFix))
	assert.Equal(t, model.HoldFixFix, s.Tasks()[0].HoldFix.Type)

	assert.Error(t, s.MoveHoldFixType("t2", model.HoldFixFix))
}

func TestTasksReturnsDeepCopy(t *testing.T) {
	s, _ := openEmpty(t)
	s.ReplaceTasks([]model.Task{{
		ID:      "t1",
		HoldFix: &model.HoldFixDetails{Type: model.HoldFixHold, Writers: []string{"Kim"}},
	}})

	got := s.Tasks()
	got[0].HoldFix.Type = model.HoldFixRelease
	got[0].HoldFix.Writers[0] = "mutated"

	orig := s.Tasks()[0]
	assert.Equal(t, model.HoldFixHold, orig.HoldFix.Type)
	assert.Equal(t, "Kim", orig.HoldFix.Writers[0])
}

func TestSaveAndReopenRoundTrip(t *testing.T) {
	s, dir := openEmpty(t)
	end := time.Date(2025, 6, 3, 18, 0, 0, 0, time.UTC)
	s.ReplaceTasks([]model.Task{{
		ID:         "t1",
		Title:      "협업 요청",
		Start:      time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		End:        &end,
		Category:   model.CategoryCollab,
		Collab:     &model.CollabDetails{TrackName: "Midnight Run", TrackProducer: "TBD"},
		ExternalID: "e1",
	}})
	require.NoError(t, s.Save())

	reopened, err := Open(dir)
	require.NoError(t, err)
	got := reopened.Tasks()
	require.Len(t, got, 1)
	assert.Equal(t, "협업 요청", got[0].Title)
	require.NotNil(t, got[0].End)
	assert.True(t, end.Equal(*got[0].End))
	assert.Equal(t, "Midnight Run", got[0].Collab.TrackName)
}

func TestPromoteToPitching(t *testing.T) {
	s, _ := openEmpty(t)
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	s.ReplaceTasks([]model.Task{{
		ID:       "t1",
		Title:    "협업 요청",
		Category: model.CategoryCollab,
		Collab: &model.CollabDetails{
			TrackName:     "Midnight Run",
			TrackProducer: "Han",
			TopLiner:      "TBD",
		},
	}})

	idea, err := s.PromoteToPitching("t1", model.PitchingGradeA, now)
	require.NoError(t, err)
	assert.NotEmpty(t, idea.ID)
	assert.Equal(t, "Midnight Run", idea.DemoName)
	// Placeholder writers never reach the pitching board.
	assert.Equal(t, []string{"Han"}, idea.Writers)
	assert.Equal(t, model.PitchingGradeA, idea.Grade)
	assert.Equal(t, "t1", idea.SourceCollabID)

	// The task leaves the collection once promoted.
	assert.Empty(t, s.Tasks())
	require.Len(t, s.PitchingIdeas(), 1)

	_, err = s.PromoteToPitching("t1", model.PitchingGradeB, now)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPromoteToPitchingRegradesExistingIdea(t *testing.T) {
	s, _ := openEmpty(t)
	now := time.Now()
	s.AddTask(model.Task{ID: "t1", Title: "demo", Category: model.CategoryCollab})

	_, err := s.PromoteToPitching("t1", model.PitchingGradeC, now)
	require.NoError(t, err)

	// The same source coming back only moves the existing idea's grade.
	s.AddTask(model.Task{ID: "t1", Title: "demo", Category: model.CategoryCollab})
	idea, err := s.PromoteToPitching("t1", model.PitchingGradeA, now)
	require.NoError(t, err)
	assert.Equal(t, model.PitchingGradeA, idea.Grade)
	assert.Len(t, s.PitchingIdeas(), 1)
}

func TestRegradeAndDeletePitching(t *testing.T) {
	s, dir := openEmpty(t)
	now := time.Now()
	s.AddTask(model.Task{ID: "t1", Title: "demo", Category: model.CategoryCollab})
	idea, err := s.PromoteToPitching("t1", model.PitchingGradeB, now)
	require.NoError(t, err)

	require.NoError(t, s.RegradePitching(idea.ID, model.PitchingGradeA))
	require.NoError(t, s.Save())

	reopened, err := Open(dir)
	require.NoError(t, err)
	ideas := reopened.PitchingIdeas()
	require.Len(t, ideas, 1)
	assert.Equal(t, model.PitchingGradeA, ideas[0].Grade)

	require.NoError(t, reopened.DeletePitchingIdea(idea.ID))
	assert.Empty(t, reopened.PitchingIdeas())
	assert.ErrorIs(t, reopened.RegradePitching(idea.ID, model.PitchingGradeB), ErrNotFound)
}
