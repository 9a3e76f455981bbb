package model

import "time"

// Category is the board bucket a task is shown on.
type Category string

const (
	CategoryUrgent   Category = "URGENT"
	CategoryWeekly   Category = "WEEKLY"
	CategoryCollab   Category = "COLLAB"
	CategoryHoldFix  Category = "HOLD_FIX"
	CategoryPersonal Category = "PERSONAL"
	CategoryStock    Category = "STOCK"

	// CategoryMusic is the classifier-internal "general music work" bucket.
	// It never reaches the task store: the sync engine remaps it to
	// CategoryWeekly before reconciling.
	CategoryMusic Category = "MUSIC"
)

// SubCategory refines CategoryPersonal. It is best-effort output of the
// external classification call; keyword classification never produces it.
type SubCategory string

const (
	SubCategoryYoutube    SubCategory = "YOUTUBE"
	SubCategoryAutomation SubCategory = "AUTOMATION"
	SubCategoryGeneral    SubCategory = "GENERAL"
)

// Task is the unit of work shown on every board.
//
// Tasks sourced from the calendar provider carry ExternalID; purely local
// tasks have none. Once UserEdited is set, a sync pass may only touch
// LastSyncedAt and a newly present end date.
type Task struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Start       time.Time   `json:"start"`
	End         *time.Time  `json:"end,omitempty"`
	Category    Category    `json:"category"`
	SubCategory SubCategory `json:"subCategory,omitempty"`
	Starred     bool        `json:"starred,omitempty"`

	Collab  *CollabDetails  `json:"collabDetails,omitempty"`
	HoldFix *HoldFixDetails `json:"holdFixDetails,omitempty"`
	Stock   *StockDetails   `json:"stockDetails,omitempty"`

	ExternalID   string    `json:"externalId,omitempty"`
	LastSyncedAt time.Time `json:"lastSyncedAt,omitempty"`
	UserEdited   bool      `json:"userEdited,omitempty"`

	// Drift means the provider changed this event since the last sync, so
	// local content may be stale. Set by the reconciler, cleared only by an
	// explicit dismissal.
	Drift bool `json:"drift,omitempty"`
}

// HasDetails reports whether a category-specific payload is already present.
// A task with details is never re-hydrated from provider text.
func (t *Task) HasDetails() bool {
	return t.Collab != nil || t.HoldFix != nil || t.Stock != nil
}

// Clone returns a deep copy, so the reconciler can build its next collection
// without mutating the caller's.
func (t *Task) Clone() Task {
	c := *t
	if t.End != nil {
		end := *t.End
		c.End = &end
	}
	if t.Collab != nil {
		collab := *t.Collab
		c.Collab = &collab
	}
	if t.HoldFix != nil {
		hf := *t.HoldFix
		hf.Writers = append([]string(nil), t.HoldFix.Writers...)
		hf.Splits = make(map[string]float64, len(t.HoldFix.Splits))
		for k, v := range t.HoldFix.Splits {
			hf.Splits[k] = v
		}
		c.HoldFix = &hf
	}
	if t.Stock != nil {
		stock := *t.Stock
		c.Stock = &stock
	}
	return c
}

// CollabStatus tracks a collaboration request through its lifecycle.
type CollabStatus string

const (
	CollabRequested  CollabStatus = "REQUESTED"
	CollabInProgress CollabStatus = "IN_PROGRESS"
	CollabCompleted  CollabStatus = "COMPLETED"
)

// CollabDetails is the structured payload for CategoryCollab tasks.
type CollabDetails struct {
	TrackName      string       `json:"trackName"`
	SongName       string       `json:"songName,omitempty"`
	TrackProducer  string       `json:"trackProducer"`
	TopLiner       string       `json:"topLiner"`
	TargetArtist   string       `json:"targetArtist"`
	Deadline       time.Time    `json:"deadline"`
	RequestedDate  time.Time    `json:"requestedDate"`
	Status         CollabStatus `json:"status"`
	PublishingInfo string       `json:"publishingInfo,omitempty"`
	Notes          string       `json:"notes,omitempty"`
	MixMonitorSent bool         `json:"mixMonitorSent,omitempty"`
}

// HoldFixType distinguishes the three hold/fix board columns.
type HoldFixType string

const (
	HoldFixHold    HoldFixType = "HOLD"
	HoldFixFix     HoldFixType = "FIX"
	HoldFixRelease HoldFixType = "RELEASE"
)

// HoldFixDetails is the structured payload for CategoryHoldFix tasks.
type HoldFixDetails struct {
	Type              HoldFixType        `json:"type"`
	DemoName          string             `json:"demoName"`
	Writers           []string           `json:"writers"`
	Splits            map[string]float64 `json:"splits"`
	PublishingInfo    string             `json:"publishingInfo,omitempty"`
	Email             string             `json:"email,omitempty"`
	ProductionFee     float64            `json:"productionFee,omitempty"`
	HoldRequestedDate time.Time          `json:"holdRequestedDate,omitempty"`
	HoldPeriod        string             `json:"holdPeriod,omitempty"`
	Manager           string             `json:"manager,omitempty"`
	TargetArtist      string             `json:"targetArtist,omitempty"`
	Notes             string             `json:"notes,omitempty"`
}

// StockDetails is the structured payload for CategoryStock tasks.
type StockDetails struct {
	Ticker           string `json:"ticker"`
	RelatedNewsTitle string `json:"relatedNewsTitle,omitempty"`
	RelatedNewsURL   string `json:"relatedNewsUrl,omitempty"`
	Note             string `json:"note,omitempty"`
}
