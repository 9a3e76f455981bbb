// Package hydrate builds category-specific detail payloads from free text.
//
// Hydration happens exactly once per task: when the reconciler first creates
// a record for a category that carries structured detail, or when an existing
// record of such a category has no payload yet. An existing payload is never
// overwritten.
package hydrate

import (
	"regexp"
	"strings"
	"time"

	"github.com/jwoolee/timsync/pkg/model"
)

var tickerRe = regexp.MustCompile(`\b[A-Z]{2,5}\b`)

// ExtractTicker returns the first 2–5 uppercase-letter token in text, or "".
func ExtractTicker(text string) string {
	return tickerRe.FindString(text)
}

// Collab builds a collaboration payload. Missing roles get TBD placeholders
// the user fills in later.
func Collab(title string, start time.Time, hints *model.Classification) *model.CollabDetails {
	d := &model.CollabDetails{
		TrackName:     title,
		TrackProducer: "TBD",
		TopLiner:      "TBD",
		TargetArtist:  "TBD",
		Deadline:      start,
		RequestedDate: start,
		Status:        model.CollabRequested,
	}
	if hints == nil {
		return d
	}
	if hints.DemoName != "" {
		d.TrackName = hints.DemoName
	}
	d.SongName = hints.SongName
	if hints.TrackProducer != "" {
		d.TrackProducer = hints.TrackProducer
	}
	if hints.TopLiner != "" {
		d.TopLiner = hints.TopLiner
	}
	if hints.Artist != "" {
		d.TargetArtist = hints.Artist
	}
	d.PublishingInfo = hints.PublishingInfo
	d.Notes = hints.Notes
	return d
}

// HoldFix builds a hold/fix payload. The column type comes from the hint when
// present, otherwise from release/fix keywords in the title, defaulting to
// HOLD. Writer splits are taken from the hint list when the external call
// extracted any.
func HoldFix(title string, start time.Time, hints *model.Classification) *model.HoldFixDetails {
	typ := holdFixTypeFromTitle(title)
	if hints != nil && hints.HoldFixType != "" {
		typ = hints.HoldFixType
	}

	d := &model.HoldFixDetails{
		Type:              typ,
		DemoName:          title,
		Writers:           []string{},
		Splits:            map[string]float64{},
		HoldRequestedDate: start,
	}
	if hints == nil {
		return d
	}
	if hints.DemoName != "" {
		d.DemoName = hints.DemoName
	} else if hints.SongName != "" {
		d.DemoName = hints.SongName
	}
	for _, w := range hints.Writers {
		if w.Name == "" {
			continue
		}
		d.Writers = append(d.Writers, w.Name)
		if w.Split > 0 {
			d.Splits[w.Name] = w.Split
		}
	}
	d.PublishingInfo = hints.PublishingInfo
	d.TargetArtist = hints.Artist
	d.Notes = hints.Notes
	return d
}

func holdFixTypeFromTitle(title string) model.HoldFixType {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "release") || strings.Contains(title, "발매"):
		return model.HoldFixRelease
	case strings.Contains(lower, "fix") || strings.Contains(title, "픽스"):
		return model.HoldFixFix
	default:
		return model.HoldFixHold
	}
}

// Stock builds a stock payload, preferring the hint ticker over a token scan
// of the event text.
func Stock(title, description string, hints *model.Classification) *model.StockDetails {
	ticker := ""
	if hints != nil {
		ticker = hints.Ticker
	}
	if ticker == "" {
		ticker = ExtractTicker(title + " " + description)
	}
	if ticker == "" {
		ticker = "STOCK"
	}
	return &model.StockDetails{Ticker: ticker}
}

// Apply fills in the detail payload for t's category if the category carries
// one and none is present yet. Categories without structured detail leave the
// task untouched.
func Apply(t *model.Task, hints *model.Classification) {
	if t.HasDetails() {
		return
	}
	switch t.Category {
	case model.CategoryCollab:
		t.Collab = Collab(t.Title, t.Start, hints)
	case model.CategoryHoldFix:
		t.HoldFix = HoldFix(t.Title, t.Start, hints)
	case model.CategoryStock:
		t.Stock = Stock(t.Title, t.Description, hints)
	}
}
