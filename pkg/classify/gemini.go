package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/jwoolee/timsync/pkg/model"
)

const classifyPromptTemplate = `You are an AI assistant for a Music A&R scheduler.
Analyze the following calendar event and classify it into one of these categories:
- PERSONAL: Personal life, gym, finance, tax, rent, insurance, private appointments.
  * SUB-CATEGORIES for PERSONAL:
    - YOUTUBE: If keywords like "브라보팝" (Bravo Pop) appear.
    - AUTOMATION: If keywords like "APP", "테스트" (Test), "AI", "Code" appear.
    - GENERAL: Lessons (레슨), Tax (세무사), Loans/Debt (대출, 빌리, 갚), General life.
- COLLAB: Music collaboration, co-writing, sessions, topline, track production.
- HOLD_FIX: Song hold, fix, release, publishing deals.
- STOCK: Stock market, earnings calls, IPO, financial news, dividends.
  * KEYWORDS for STOCK: "주식", "증권", "주가", "실적", "매출", "배당", "IPO", "Ticker", "NASDAQ", "KOSPI", "KOSDAQ", "MSCI", "TSMC", "엔비디아".
- MUSIC: General music work, meetings, listening sessions, A&R work (Default for work items).

Important: If the event is music work and has no explicit stock/finance terms, choose MUSIC.

Also extract relevant details like Stock Ticker, Target Artist, or writer splits if available.

Event Title: %s
Event Description: %s

Return ONLY a JSON object with this structure:
{
  "category": "CATEGORY_NAME",
  "subCategory": "SUB_CATEGORY_IF_PERSONAL",
  "summary": "Concise summary (max 10 words)",
  "ticker": "STOCK_TICKER_IF_APPLICABLE",
  "artist": "ARTIST_NAME_IF_APPLICABLE",
  "demoName": "DEMO_NAME_IF_APPLICABLE",
  "holdFixType": "HOLD, FIX or RELEASE if HOLD_FIX",
  "writers": [{"name": "WRITER", "split": 50}]
}`

// Gemini classifies events with Google's Gemini models through langchaingo.
type Gemini struct {
	llm llms.Model
}

// NewGemini creates a Gemini-backed classifier. The API key must be present;
// the model name falls back to the configured default when empty.
func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is missing")
	}
	opts := []googleai.Option{googleai.WithAPIKey(apiKey)}
	if modelName != "" {
		opts = append(opts, googleai.WithDefaultModel(modelName))
	}
	llm, err := googleai.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gemini: creating client: %w", err)
	}
	return &Gemini{llm: llm}, nil
}

// geminiResult is the wire shape the prompt asks for.
type geminiResult struct {
	Category       string  `json:"category"`
	SubCategory    string  `json:"subCategory"`
	Summary        string  `json:"summary"`
	Ticker         string  `json:"ticker"`
	Artist         string  `json:"artist"`
	DemoName       string  `json:"demoName"`
	SongName       string  `json:"songName"`
	TrackProducer  string  `json:"trackProducer"`
	TopLiner       string  `json:"topLiner"`
	PublishingInfo string  `json:"publishingInfo"`
	Notes          string  `json:"notes"`
	HoldFixType    string  `json:"holdFixType"`
	Writers        []model.WriterSplit `json:"writers"`
}

// Classify sends one event to Gemini and parses the JSON reply. Transport
// and parse failures both surface as errors; the caller degrades to the
// keyword result.
func (g *Gemini) Classify(ctx context.Context, title, description string) (*model.Classification, error) {
	prompt := fmt.Sprintf(classifyPromptTemplate, title, description)
	out, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt, llms.WithTemperature(0))
	if err != nil {
		return nil, fmt.Errorf("gemini: generate: %w", err)
	}

	var res geminiResult
	if err := json.Unmarshal([]byte(stripFences(out)), &res); err != nil {
		return nil, fmt.Errorf("gemini: parsing response: %w", err)
	}

	cat := model.Category(res.Category)
	switch cat {
	case model.CategoryPersonal, model.CategoryCollab, model.CategoryHoldFix,
		model.CategoryStock, model.CategoryMusic:
	default:
		cat = ""
	}

	return &model.Classification{
		Category:       cat,
		SubCategory:    model.SubCategory(res.SubCategory),
		Summary:        res.Summary,
		Ticker:         res.Ticker,
		Artist:         res.Artist,
		DemoName:       res.DemoName,
		SongName:       res.SongName,
		TrackProducer:  res.TrackProducer,
		TopLiner:       res.TopLiner,
		PublishingInfo: res.PublishingInfo,
		Notes:          res.Notes,
		HoldFixType:    model.HoldFixType(res.HoldFixType),
		Writers:        res.Writers,
	}, nil
}

// stripFences removes a markdown code fence if the model wrapped its JSON in
// one despite the instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
