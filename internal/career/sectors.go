package career

import (
	"sort"
	"strings"
)

// SectorShare is one hiring sector with its share of opportunities.
type SectorShare struct {
	Sector     string `json:"sector"`
	Percentage int    `json:"percentage"`
}

// sectorKeywords is scanned against the market text.
var sectorKeywords = []struct {
	name     string
	keywords []string
}{
	{"Technology", []string{"tech", "software", "it", "startup", "innovation", "digital", "saas", "cloud"}},
	{"Healthcare", []string{"healthcare", "medical", "hospital", "clinic", "pharma", "health", "biotech"}},
	{"Finance", []string{"finance", "banking", "investment", "insurance", "fintech", "financial services"}},
	{"Education", []string{"education", "university", "school", "academic", "training", "learning"}},
	{"Government", []string{"government", "public", "federal", "state", "municipal", "agency"}},
	{"Manufacturing", []string{"manufacturing", "industrial", "production", "factory", "automotive"}},
	{"Consulting", []string{"consulting", "advisory", "professional services", "strategy"}},
	{"Retail", []string{"retail", "sales", "commerce", "customer", "e-commerce"}},
	{"Energy", []string{"energy", "oil", "renewable", "utilities", "power"}},
	{"Media", []string{"media", "entertainment", "publishing", "broadcasting", "content"}},
}

// fallbackSectors is returned when the record has no market text at all.
var fallbackSectors = []SectorShare{
	{"Technology", 35},
	{"Healthcare", 25},
	{"Finance", 20},
	{"Education", 12},
	{"Government", 8},
}

// SectorDistribution ranks the ten sectors by keyword relevance in the
// market text and turns the top five into a percentage distribution.
// The share formulas are score-based and deliberately literal; after the
// proportional integer rescale, the truncation remainder goes to the top
// sector so the shares always total 100.
func SectorDistribution(rec *CareerRecord) []SectorShare {
	if rec == nil || rec.MarketAnalysis == "" {
		out := make([]SectorShare, len(fallbackSectors))
		copy(out, fallbackSectors)
		return out
	}

	marketText := strings.ToLower(rec.MarketAnalysis)
	careerName := strings.ToLower(rec.CareerName)

	type scored struct {
		name  string
		score int
	}
	scores := make([]scored, 0, len(sectorKeywords))
	for _, sec := range sectorKeywords {
		score := 0
		for _, kw := range sec.keywords {
			score += strings.Count(marketText, kw) * 8
			if strings.Contains(careerName, kw) {
				score += 20
			}
		}
		scores = append(scores, scored{sec.name, score})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	shares := make([]SectorShare, 0, 5)
	for i, s := range scores[:5] {
		var pct int
		switch i {
		case 0:
			pct = clamp(30+s.score/4, 25, 45)
		case 1:
			pct = clamp(20+s.score/6, 15, 30)
		default:
			pct = clamp(10+s.score/8, 5, 20)
		}
		shares = append(shares, SectorShare{Sector: s.name, Percentage: pct})
	}

	total := 0
	for _, s := range shares {
		total += s.Percentage
	}
	if total == 0 {
		return shares
	}

	rescaled := 0
	for i := range shares {
		shares[i].Percentage = shares[i].Percentage * 100 / total
		rescaled += shares[i].Percentage
	}
	shares[0].Percentage += 100 - rescaled

	return shares
}
