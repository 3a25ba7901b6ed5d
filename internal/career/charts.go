package career

import (
	"math/rand"
	"strings"
	"time"

	"github.com/anatolykoptev/go_career/internal/engine"
)

// ChartBundle groups the four derived series for one record.
type ChartBundle struct {
	Trends  []TrendScore  `json:"trends"`
	Salary  SalaryData    `json:"salary"`
	Skills  []SkillScore  `json:"skills"`
	Sectors []SectorShare `json:"sectors"`
}

// DeriveCharts runs all four heuristic derivations over a record.
// rng drives the jitter terms; pass a seeded source for reproducible
// output, or nil for a time-seeded one.
func DeriveCharts(rec *CareerRecord, rng *rand.Rand) ChartBundle {
	engine.IncrChartRequests()
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return ChartBundle{
		Trends:  IndustryTrends(rec, rng),
		Salary:  SalaryProgression(rec),
		Skills:  SkillImportance(rec, rng),
		Sectors: SectorDistribution(rec),
	}
}

// keywordScore sums weighted occurrence counts of keywords in text.
// The scoring is keyword-frequency approximation for chart rendering only,
// not analytical accuracy.
func keywordScore(text string, keywords []string, weight int) int {
	score := 0
	for _, kw := range keywords {
		score += strings.Count(text, kw) * weight
	}
	return score
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
