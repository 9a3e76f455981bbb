package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jwoolee/timsync/pkg/model"
)

func TestByKeywords(t *testing.T) {
	tests := []struct {
		name  string
		title string
		desc  string
		want  model.Category
		hit   bool
	}{
		{"collab korean", "협업 요청", "", model.CategoryCollab, true},
		{"collab english", "Cowrite with producers", "", model.CategoryCollab, true},
		{"hold", "데모 홀드 요청", "", model.CategoryHoldFix, true},
		{"personal", "운동 레슨", "", model.CategoryPersonal, true},
		{"strong stock", "주식 매매 복기", "", model.CategoryStock, true},
		{"weak stock without music", "미국 고용 데이터", "", model.CategoryStock, true},
		{"weak stock beaten by music", "미국 싱글 발매 준비", "", model.CategoryMusic, true},
		{"music", "타이틀곡 리스닝", "", model.CategoryMusic, true},
		{"keyword in description", "untitled", "topline session", model.CategoryMusic, true},
		{"no match", "zzz", "qqq", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := ByKeywords(tt.title, tt.desc)
			assert.Equal(t, tt.hit, hit)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestByKeywordsOrderingEncodesPriority(t *testing.T) {
	// Collab keywords outrank generic music-work keywords.
	got, hit := ByKeywords("collab demo track", "")
	assert.True(t, hit)
	assert.Equal(t, model.CategoryCollab, got)

	// Personal keywords outrank ambiguous finance keywords.
	got, hit = ByKeywords("세금 비용 수익 정리", "")
	assert.True(t, hit)
	assert.Equal(t, model.CategoryPersonal, got)
}

func TestByKeywordsDeterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		got, hit := ByKeywords("주식 매매", "복기")
		assert.True(t, hit)
		assert.Equal(t, model.CategoryStock, got)
	}
}

type stubModel struct {
	result *model.Classification
	err    error
	calls  int
}

func (s *stubModel) Classify(ctx context.Context, title, description string) (*model.Classification, error) {
	s.calls++
	return s.result, s.err
}

func TestServiceKeywordCategoryWins(t *testing.T) {
	stub := &stubModel{result: &model.Classification{
		Category: model.CategoryStock,
		Ticker:   "NVDA",
	}}
	svc := NewService(stub, nil)

	got := svc.Classify(context.Background(), "협업 요청", "")
	assert.Equal(t, model.CategoryCollab, got.Category)
	// Hints from the external call survive even when keywords decide.
	assert.Equal(t, "NVDA", got.Ticker)
}

func TestServiceFallsBackToModel(t *testing.T) {
	stub := &stubModel{result: &model.Classification{
		Category:    model.CategoryPersonal,
		SubCategory: model.SubCategoryYoutube,
	}}
	svc := NewService(stub, nil)

	got := svc.Classify(context.Background(), "zzz", "qqq")
	assert.Equal(t, model.CategoryPersonal, got.Category)
	assert.Equal(t, model.SubCategoryYoutube, got.SubCategory)
}

func TestServiceModelFailureDegradesToDefault(t *testing.T) {
	svc := NewService(&stubModel{err: errors.New("boom")}, nil)

	got := svc.Classify(context.Background(), "zzz", "")
	assert.Equal(t, model.CategoryMusic, got.Category)
}

func TestServiceModelFailureKeepsKeywordResult(t *testing.T) {
	svc := NewService(&stubModel{err: errors.New("boom")}, nil)

	got := svc.Classify(context.Background(), "홀드 연장", "")
	assert.Equal(t, model.CategoryHoldFix, got.Category)
}

func TestServiceWithoutModel(t *testing.T) {
	svc := NewService(nil, nil)
	got := svc.Classify(context.Background(), "zzz", "")
	assert.Equal(t, model.CategoryMusic, got.Category)
}

func TestServiceStripsSubCategoryOutsidePersonal(t *testing.T) {
	stub := &stubModel{result: &model.Classification{
		Category:    model.CategoryMusic,
		SubCategory: model.SubCategoryGeneral,
	}}
	svc := NewService(stub, nil)

	got := svc.Classify(context.Background(), "zzz", "")
	assert.Empty(t, got.SubCategory)
}

func TestStripFences(t *testing.T) {
	raw := "```json\n{\"category\":\"MUSIC\"}\n```"
	assert.Equal(t, `{"category":"MUSIC"}`, stripFences(raw))
	assert.Equal(t, `{"a":1}`, stripFences(`{"a":1}`))
}
