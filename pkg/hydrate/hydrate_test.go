package hydrate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwoolee/timsync/pkg/model"
)

var start = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestExtractTicker(t *testing.T) {
	assert.Equal(t, "NVDA", ExtractTicker("Buy NVDA before earnings"))
	assert.Equal(t, "TSM", ExtractTicker("watch TSM today"))
	assert.Equal(t, "", ExtractTicker("no ticker in here"))
	// Six uppercase letters is not a ticker token.
	assert.Equal(t, "", ExtractTicker("ABCDEF"))
}

func TestCollabDefaults(t *testing.T) {
	d := Collab("협업 요청", start, nil)
	assert.Equal(t, "협업 요청", d.TrackName)
	assert.Equal(t, "TBD", d.TrackProducer)
	assert.Equal(t, "TBD", d.TopLiner)
	assert.Equal(t, "TBD", d.TargetArtist)
	assert.Equal(t, model.CollabRequested, d.Status)
	assert.Equal(t, start, d.Deadline)
	assert.Equal(t, start, d.RequestedDate)
}

func TestCollabUsesHints(t *testing.T) {
	d := Collab("title", start, &model.Classification{
		DemoName:      "Midnight Run",
		TrackProducer: "Han",
		Artist:        "IU",
	})
	assert.Equal(t, "Midnight Run", d.TrackName)
	assert.Equal(t, "Han", d.TrackProducer)
	assert.Equal(t, "TBD", d.TopLiner)
	assert.Equal(t, "IU", d.TargetArtist)
}

func TestHoldFixTypeFromTitle(t *testing.T) {
	assert.Equal(t, model.HoldFixRelease, HoldFix("발매 일정", start, nil).Type)
	assert.Equal(t, model.HoldFixFix, HoldFix("데모 픽스", start, nil).Type)
	assert.Equal(t, model.HoldFixHold, HoldFix("데모 문의", start, nil).Type)
}

func TestHoldFixHintTypeWins(t *testing.T) {
	d := HoldFix("발매 일정", start, &model.Classification{HoldFixType: model.HoldFixFix})
	assert.Equal(t, model.HoldFixFix, d.Type)
}

func TestHoldFixWriterSplits(t *testing.T) {
	d := HoldFix("demo", start, &model.Classification{
		Writers: []model.WriterSplit{
			{Name: "Kim", Split: 60},
			{Name: "Lee"},
			{Name: ""},
		},
	})
	assert.Equal(t, []string{"Kim", "Lee"}, d.Writers)
	assert.Equal(t, map[string]float64{"Kim": 60}, d.Splits)
}

func TestHoldFixDefaultsAreEmptyNotNil(t *testing.T) {
	d := HoldFix("demo", start, nil)
	require.NotNil(t, d.Writers)
	require.NotNil(t, d.Splits)
	assert.Empty(t, d.Writers)
}

func TestStockTickerPreference(t *testing.T) {
	assert.Equal(t, "AAPL", Stock("earnings", "", &model.Classification{Ticker: "AAPL"}).Ticker)
	assert.Equal(t, "NVDA", Stock("NVDA 실적", "", nil).Ticker)
	assert.Equal(t, "STOCK", Stock("실적 발표", "", nil).Ticker)
}

func TestApplyHydratesByCategory(t *testing.T) {
	task := model.Task{Title: "협업", Start: start, Category: model.CategoryCollab}
	Apply(&task, nil)
	require.NotNil(t, task.Collab)
	assert.Nil(t, task.HoldFix)
	assert.Nil(t, task.Stock)
}

func TestApplyNeverOverwrites(t *testing.T) {
	existing := &model.CollabDetails{TrackName: "custom", TrackProducer: "Han"}
	task := model.Task{Title: "new title", Start: start, Category: model.CategoryCollab, Collab: existing}
	Apply(&task, &model.Classification{DemoName: "other"})
	assert.Same(t, existing, task.Collab)
	assert.Equal(t, "custom", task.Collab.TrackName)
}

func TestApplyNoopForPlainCategories(t *testing.T) {
	task := model.Task{Title: "주간 회의", Start: start, Category: model.CategoryWeekly}
	Apply(&task, nil)
	assert.False(t, task.HasDetails())
}
