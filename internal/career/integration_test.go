package career

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExplorationFlow walks the whole pipeline the way a session does:
// analyze a career, derive all four chart series, answer a follow-up
// question, and render the report.
func TestExplorationFlow(t *testing.T) {
	ctx := context.Background()

	stub := &stubCompleter{reply: func(prompt string) (string, error) {
		switch {
		case strings.Contains(prompt, "job market"):
			return "High demand for designers in san francisco. Tech startups and saas companies hire heavily; retail brands too.", nil
		case strings.Contains(prompt, "industry insights"):
			return "Remote work is standard. AI tools and digital transformation reshape design workflows.", nil
		case strings.Contains(prompt, "learning roadmap"):
			return "Learn design tools, study visual communication, build a portfolio.", nil
		default:
			return "UX designers do creative design work: research, visual design, prototyping with design tools.", nil
		}
	}}
	initTestEngine(stub)

	analyzer := newTestAnalyzer()
	rec := analyzer.Analyze(ctx, "UX Designer", &UserProfile{Name: "Kim", ExperienceYears: 1})

	require.NotNil(t, rec)
	assert.Equal(t, 4, stub.calls)
	for _, field := range []string{rec.Research, rec.MarketAnalysis, rec.LearningRoadmap, rec.IndustryInsights} {
		assert.NotEmpty(t, field)
	}
	assert.Contains(t, rec.LearningRoadmap, "UX Designer Learning Roadmap")

	bundle := DeriveCharts(rec, rand.New(rand.NewSource(42)))
	assert.Len(t, bundle.Trends, 5)
	assert.Len(t, bundle.Salary.Salaries, 4)
	assert.Len(t, bundle.Skills, 6)
	assert.Len(t, bundle.Sectors, 5)

	sum := 0
	for _, s := range bundle.Sectors {
		sum += s.Percentage
	}
	assert.Equal(t, 100, sum)

	// "designer" names the creative bucket; san francisco and high demand
	// push the multiplier to 1.25 * 1.3.
	assert.Equal(t, []int{73125, 105625, 146250, 195000}, bundle.Salary.Salaries)

	chat := NewAssistant()
	answer := chat.Ask(ctx, "What salary can I expect?", rec)
	assert.NotEmpty(t, answer)
	require.Len(t, chat.History(), 2)

	subject, body := RenderSummary(rec, "Kim")
	assert.Equal(t, "Your UX Designer Career Analysis Report", subject)
	assert.Contains(t, body, "Dear Kim,")
	assert.Contains(t, body, "## Next Steps")

	// A later analyzer on the same cache re-answers without new LLM calls.
	before := stub.calls
	again := NewAnalyzer(analyzer.cache)
	again.retryWait = 0
	again.Analyze(ctx, "UX Designer", &UserProfile{ExperienceYears: 1})
	assert.Equal(t, before, stub.calls)
}
