package career

import (
	"math/rand"
	"strings"
)

// TrendScore is one industry trend with its derived impact score (0-100).
type TrendScore struct {
	Trend string `json:"trend"`
	Score int    `json:"score"`
}

// trendCategories is the fixed category table scanned against the combined
// insights + market text. Order matters: it decides iteration and fallback
// padding. The first two keywords of each category double as the
// career-name boost set.
var trendCategories = []struct {
	name     string
	keywords []string
}{
	{"Remote Work", []string{"remote", "work from home", "telecommute", "distributed", "hybrid", "flexible"}},
	{"AI Integration", []string{"artificial intelligence", "ai", "machine learning", "automation", "smart", "intelligent"}},
	{"Sustainability", []string{"sustainable", "green", "environmental", "eco-friendly", "climate", "renewable"}},
	{"Cloud Computing", []string{"cloud", "aws", "azure", "saas", "infrastructure", "platform", "serverless"}},
	{"Cybersecurity", []string{"security", "cyber", "privacy", "protection", "data security", "encryption", "breach"}},
	{"Digital Transformation", []string{"digital", "transformation", "modernization", "digitization", "innovation", "tech"}},
	{"Data Analytics", []string{"data", "analytics", "big data", "insights", "business intelligence", "metrics", "visualization"}},
	{"Blockchain", []string{"blockchain", "cryptocurrency", "decentralized", "distributed ledger", "crypto", "web3"}},
	{"Mobile Technology", []string{"mobile", "smartphone", "app", "ios", "android", "responsive"}},
	{"IoT", []string{"internet of things", "iot", "connected devices", "smart devices", "sensors"}},
}

// fallbackTrends is returned when the record has no insights text at all.
var fallbackTrends = []TrendScore{
	{"Remote Work", 85},
	{"AI Integration", 92},
	{"Sustainability", 78},
	{"Cloud Computing", 88},
	{"Cybersecurity", 95},
}

// IndustryTrends scores the ten trend categories against the record's
// insights and market text and returns the top five. Scores carry bounded
// jitter so repeated renders vary slightly; fix the rng seed for
// deterministic output.
func IndustryTrends(rec *CareerRecord, rng *rand.Rand) []TrendScore {
	if rec == nil || rec.IndustryInsights == "" {
		out := make([]TrendScore, len(fallbackTrends))
		copy(out, fallbackTrends)
		return out
	}

	combined := strings.ToLower(rec.IndustryInsights) + " " + strings.ToLower(rec.MarketAnalysis)
	careerName := strings.ToLower(rec.CareerName)

	var trends []TrendScore
	for _, cat := range trendCategories {
		score := keywordScore(combined, cat.keywords, 10)
		if containsAny(careerName, cat.keywords[:2]) {
			score += 25
		}

		jittered := clamp(score+rng.Intn(20)+10, 55, 95)

		if score > 0 || len(trends) < 5 {
			trends = append(trends, TrendScore{Trend: cat.name, Score: jittered})
		}
	}

	// Pad with un-scored categories and fallback scores if fewer than 5.
	for len(trends) < 5 {
		for _, cat := range trendCategories {
			if !trendListed(trends, cat.name) {
				trends = append(trends, TrendScore{Trend: cat.name, Score: rng.Intn(25) + 60})
				break
			}
		}
	}

	return trends[:5]
}

func trendListed(trends []TrendScore, name string) bool {
	for _, t := range trends {
		if t.Trend == name {
			return true
		}
	}
	return false
}
