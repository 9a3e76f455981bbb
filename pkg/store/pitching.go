package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/jwoolee/timsync/pkg/model"
)

// PitchingIdeas returns a copy of the pitching board.
func (s *Store) PitchingIdeas() []model.PitchingIdea {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.PitchingIdea, len(s.pitching))
	copy(out, s.pitching)
	return out
}

// PromoteToPitching turns a collab task into a graded pitching idea and
// removes the task from the collection. Promoting the same task again only
// regrades the existing idea.
func (s *Store) PromoteToPitching(taskID string, grade model.PitchingGrade, now time.Time) (model.PitchingIdea, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.PitchingIdea{}, ErrNotFound
	}
	t := s.tasks[idx]

	for i := range s.pitching {
		if s.pitching[i].SourceCollabID == taskID {
			s.pitching[i].Grade = grade
			s.dirtyPitching = true
			return s.pitching[i], nil
		}
	}

	idea := model.PitchingIdea{
		ID:             uuid.NewString(),
		DemoName:       t.Title,
		Writers:        []string{},
		Grade:          grade,
		SourceCollabID: taskID,
		CreatedAt:      now,
	}
	if c := t.Collab; c != nil {
		if c.TrackName != "" {
			idea.DemoName = c.TrackName
		} else if c.SongName != "" {
			idea.DemoName = c.SongName
		}
		for _, w := range []string{c.TrackProducer, c.TopLiner} {
			if w != "" && w != "TBD" {
				idea.Writers = append(idea.Writers, w)
			}
		}
		idea.PublishingInfo = c.PublishingInfo
		idea.Notes = c.Notes
	}

	s.pitching = append(s.pitching, idea)
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.dirtyTasks = true
	s.dirtyPitching = true
	return idea, nil
}

// RegradePitching moves an idea to another grade column.
func (s *Store) RegradePitching(id string, grade model.PitchingGrade) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.pitching {
		if s.pitching[i].ID == id {
			s.pitching[i].Grade = grade
			s.dirtyPitching = true
			return nil
		}
	}
	return ErrNotFound
}

// DeletePitchingIdea removes an idea from the board.
func (s *Store) DeletePitchingIdea(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.pitching {
		if s.pitching[i].ID == id {
			s.pitching = append(s.pitching[:i], s.pitching[i+1:]...)
			s.dirtyPitching = true
			return nil
		}
	}
	return ErrNotFound
}
