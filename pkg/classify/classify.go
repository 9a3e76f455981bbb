// Package classify assigns a task category to calendar event text.
//
// Classification is keyword-first: an ordered rule table decides most events
// deterministically. Only when the table is inconclusive does the category
// come from the external model call, and that call may fail at any time —
// failure degrades the single event to the default music-work bucket and
// never blocks a sync pass.
package classify

import (
	"context"

	"go.uber.org/zap"

	"github.com/jwoolee/timsync/pkg/model"
)

// Model is the external natural-language classification call. Implementations
// may fail or return nil; callers must treat both as "no result" and fall
// back to the keyword path.
type Model interface {
	Classify(ctx context.Context, title, description string) (*model.Classification, error)
}

// Service combines the keyword table with an optional external model.
type Service struct {
	model Model
	log   *zap.Logger
}

// NewService builds a classification service. Both arguments may be nil:
// without a model the service is purely keyword-driven, without a logger
// failures are silent.
func NewService(m Model, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{model: m, log: log}
}

// Classify returns the category for one event, plus whatever extraction
// hints the external call produced. The keyword category, when present,
// always wins; the external result still contributes sub-category and
// hydration hints. With neither source conclusive the event lands in the
// general music-work bucket.
func (s *Service) Classify(ctx context.Context, title, description string) model.Classification {
	keywordCat, keywordHit := ByKeywords(title, description)

	var ext *model.Classification
	if s.model != nil {
		res, err := s.model.Classify(ctx, title, description)
		if err != nil {
			s.log.Warn("external classification failed",
				zap.String("title", title), zap.Error(err))
		} else {
			ext = res
		}
	}

	var out model.Classification
	if ext != nil {
		out = *ext
	}
	switch {
	case keywordHit:
		out.Category = keywordCat
	case out.Category == "":
		out.Category = model.CategoryMusic
	}
	if out.Category != model.CategoryPersonal {
		out.SubCategory = ""
	}
	return out
}
