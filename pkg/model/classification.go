package model

// WriterSplit is one writer/percentage pair extracted by the external
// classification call.
type WriterSplit struct {
	Name  string  `json:"name"`
	Split float64 `json:"split,omitempty"`
}

// Classification is the ephemeral result of classifying one event. Category
// is always set; everything else is best-effort extraction consumed by the
// detail hydrator and then discarded.
type Classification struct {
	Category    Category    `json:"category"`
	SubCategory SubCategory `json:"subCategory,omitempty"`
	Summary     string      `json:"summary,omitempty"`

	// Hints for the detail hydrator.
	Ticker         string        `json:"ticker,omitempty"`
	Artist         string        `json:"artist,omitempty"`
	DemoName       string        `json:"demoName,omitempty"`
	SongName       string        `json:"songName,omitempty"`
	TrackProducer  string        `json:"trackProducer,omitempty"`
	TopLiner       string        `json:"topLiner,omitempty"`
	PublishingInfo string        `json:"publishingInfo,omitempty"`
	Notes          string        `json:"notes,omitempty"`
	HoldFixType    HoldFixType   `json:"holdFixType,omitempty"`
	Writers        []WriterSplit `json:"writers,omitempty"`
}
