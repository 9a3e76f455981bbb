package model

import "time"

// PitchingGrade ranks an idea on the pitching board.
type PitchingGrade string

const (
	PitchingGradeA PitchingGrade = "A"
	PitchingGradeB PitchingGrade = "B"
	PitchingGradeC PitchingGrade = "C"
)

// PitchingIdea is a demo promoted from the collaboration board for pitching
// to artists. SourceCollabID keeps the link to the collab task it came from
// so repeated promotion only regrades the existing idea.
type PitchingIdea struct {
	ID             string        `json:"id"`
	DemoName       string        `json:"demoName"`
	Writers        []string      `json:"writers"`
	PublishingInfo string        `json:"publishingInfo,omitempty"`
	Grade          PitchingGrade `json:"grade"`
	SourceCollabID string        `json:"sourceCollabId,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	Notes          string        `json:"notes,omitempty"`
}
