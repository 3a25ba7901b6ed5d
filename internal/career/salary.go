package career

import "strings"

// SalaryData is the derived salary-by-experience progression.
type SalaryData struct {
	Levels   []string `json:"levels"`
	Salaries []int    `json:"salaries"`
}

// salaryBucket is one industry's base salary band across four tiers
// (entry, mid, senior, lead).
type salaryBucket struct {
	name     string
	keywords []string
	tiers    [4]int
}

// salaryBuckets classify a career name into an industry. First keyword
// match wins, in this fixed priority order.
var salaryBuckets = []salaryBucket{
	{"tech", []string{"software", "data", "engineer", "developer", "tech", "programming", "ai", "ml", "cyber"}, [4]int{75000, 100000, 140000, 180000}},
	{"finance", []string{"finance", "banking", "investment", "accounting", "financial"}, [4]int{70000, 95000, 130000, 170000}},
	{"healthcare", []string{"healthcare", "medical", "nurse", "doctor", "therapy", "clinical"}, [4]int{60000, 80000, 110000, 145000}},
	{"education", []string{"teacher", "education", "professor", "instructor", "academic"}, [4]int{45000, 60000, 80000, 105000}},
	{"marketing", []string{"marketing", "advertising", "digital marketing", "brand"}, [4]int{50000, 70000, 95000, 125000}},
	{"creative", []string{"design", "creative", "art", "graphic", "ui", "ux", "visual"}, [4]int{45000, 65000, 90000, 120000}},
	{"engineering", []string{"mechanical", "civil", "electrical", "chemical", "aerospace"}, [4]int{70000, 90000, 125000, 160000}},
	{"consulting", []string{"consultant", "consulting", "advisory", "strategy"}, [4]int{80000, 110000, 150000, 200000}},
	{"sales", []string{"sales", "business development", "account", "revenue"}, [4]int{45000, 70000, 100000, 140000}},
}

var defaultSalaryBucket = salaryBucket{name: "default", tiers: [4]int{55000, 75000, 100000, 130000}}

// Sentiment phrase groups, checked against the market text in priority
// order; the first matching group sets the multiplier.
var (
	highDemandPhrases = []string{"high demand", "competitive salary", "shortage", "premium"}
	growthPhrases     = []string{"growing", "increasing", "rising", "strong demand"}
	stabilityPhrases  = []string{"stable", "steady", "consistent"}
	declinePhrases    = []string{"declining", "competitive market", "oversaturated"}
)

// Geographic hotspots named in the market text adjust the band further.
var (
	tierOneCities = []string{"san francisco", "silicon valley", "new york", "seattle"}
	tierTwoCities = []string{"austin", "denver", "boston", "washington"}
)

var salaryLevels = []string{
	"Entry Level (0-2 years)",
	"Mid Level (3-7 years)",
	"Senior Level (8-15 years)",
	"Lead/Manager (15+ years)",
}

// fallbackSalary is returned when the record has no market text at all.
var fallbackSalary = SalaryData{
	Levels:   []string{"Entry Level", "Mid Level", "Senior Level", "Lead/Manager"},
	Salaries: []int{65000, 85000, 110000, 140000},
}

// SalaryProgression derives four salary tiers from the career name's
// industry bucket, scaled by demand sentiment and geographic hotspots
// found in the market text. The arithmetic is deliberately literal; the
// figures are illustrative, not authoritative.
func SalaryProgression(rec *CareerRecord) SalaryData {
	if rec == nil || rec.MarketAnalysis == "" {
		out := SalaryData{
			Levels:   append([]string(nil), fallbackSalary.Levels...),
			Salaries: append([]int(nil), fallbackSalary.Salaries...),
		}
		return out
	}

	marketText := strings.ToLower(rec.MarketAnalysis)
	careerName := strings.ToLower(rec.CareerName)

	bucket := defaultSalaryBucket
	for _, b := range salaryBuckets {
		if containsAny(careerName, b.keywords) {
			bucket = b
			break
		}
	}

	multiplier := SalaryMultiplier(marketText)

	salaries := make([]int, 4)
	for i, base := range bucket.tiers {
		salaries[i] = int(float64(base) * multiplier)
	}

	return SalaryData{
		Levels:   append([]string(nil), salaryLevels...),
		Salaries: salaries,
	}
}

// SalaryMultiplier derives the demand and geography multiplier from
// lowercase market text. Exported so the scaling step can be tested
// independently of the bucket tables.
func SalaryMultiplier(marketText string) float64 {
	multiplier := 1.0
	switch {
	case containsAny(marketText, highDemandPhrases):
		multiplier = 1.25
	case containsAny(marketText, growthPhrases):
		multiplier = 1.15
	case containsAny(marketText, stabilityPhrases):
		multiplier = 1.05
	case containsAny(marketText, declinePhrases):
		multiplier = 0.9
	}

	switch {
	case containsAny(marketText, tierOneCities):
		multiplier *= 1.3
	case containsAny(marketText, tierTwoCities):
		multiplier *= 1.2
	}
	return multiplier
}
