package classify

import (
	"strings"

	"github.com/jwoolee/timsync/pkg/model"
)

// Keyword groups are evaluated in order; the first group with a match wins,
// so an explicit collaboration keyword outranks a generic music-work keyword
// and personal keywords outrank ambiguous finance keywords.

var collabKeywords = []string{
	"협업", "collab", "collaboration", "cowrite", "co-write",
}

var holdFixKeywords = []string{
	"홀드", "hold", "픽스", "fix",
}

var personalKeywords = []string{
	"개인", "운동", "월세", "금전", "세금", "비용", "법인",
	"대출", "카드", "보험", "재무", "레슨", "세무사", "빌리",
	"갚", "브라보팝", "app", "테스트", "youtube", "유투브",
	"메모장", "목표", "단기", "중기", "연간", "계획", "루틴",
	"건강", "취미", "독서", "정리",
}

// strongStockKeywords always classify as STOCK; weakStockKeywords only do so
// when no music keyword is present, since words like "발표" or "수익" show up
// in both worlds.
var strongStockKeywords = []string{
	"주식", "증권", "주가", "실적", "매출", "배당", "ipo",
	"earnings", "ticker", "nasdaq", "kospi", "kosdaq", "finance",
	"에어쇼", "airshow", "복기", "맥점", "매매",
	"고용보고서", "non-farm", "payrolls", "올림픽",
	"cpi", "ppi", "fomc", "gdp", "금리", "인플레이션",
	"etf", "펀드", "리밸런싱", "포트폴리오", "차트",
}

var weakStockKeywords = []string{
	"수익", "미국", "고용", "msci", "tsmc", "엔비디아",
	"물가", "소비자", "발표", "개최", "수익률",
}

var musicKeywords = []string{
	"희선", "대표님", "a&r", "보고", "솔로앨범", "마감",
	"피드백", "작가", "lead", "송캠프", "타이틀곡", "수급",
	"음악", "song", "demo", "track", "topline", "mix",
	"master", "session", "vocal", "writer", "release",
	"발매", "작곡", "작사", "리스닝", "싱글", "앨범",
}

func matchesAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// ByKeywords classifies the concatenated title and description with the
// ordered rule table. It is a pure function of the table: identical input
// always yields the same category. The boolean is false when no group
// matches and the external call should decide.
func ByKeywords(title, description string) (model.Category, bool) {
	text := strings.ToLower(title + "\n" + description)

	switch {
	case matchesAny(text, collabKeywords):
		return model.CategoryCollab, true
	case matchesAny(text, holdFixKeywords):
		return model.CategoryHoldFix, true
	case matchesAny(text, personalKeywords):
		return model.CategoryPersonal, true
	}

	if matchesAny(text, strongStockKeywords) ||
		(matchesAny(text, weakStockKeywords) && !matchesAny(text, musicKeywords)) {
		return model.CategoryStock, true
	}
	if matchesAny(text, musicKeywords) {
		return model.CategoryMusic, true
	}
	return "", false
}
