package career

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/anatolykoptev/go_career/internal/engine"
)

// Analyzer runs the four-query analysis pipeline for one session. Records
// are memoized by career name: a repeat call returns the stored record
// unchanged even if the profile differs, until Evict is called.
type Analyzer struct {
	cache   *engine.ResponseCache
	records map[string]*CareerRecord
	limiter *rate.Limiter // paces outbound LLM queries
	now     func() time.Time

	queryRetries int
	retryWait    time.Duration
}

// NewAnalyzer creates an analyzer backed by the given session cache.
func NewAnalyzer(cache *engine.ResponseCache) *Analyzer {
	interval := engine.Cfg.QueryInterval
	if interval <= 0 {
		interval = time.Second
	}
	return &Analyzer{
		cache:        cache,
		records:      make(map[string]*CareerRecord),
		limiter:      rate.NewLimiter(rate.Every(interval), 1),
		now:          time.Now,
		queryRetries: 3,
		retryWait:    2 * time.Second,
	}
}

// Record returns the memoized record for a career name, if any.
func (a *Analyzer) Record(careerName string) (*CareerRecord, bool) {
	rec, ok := a.records[careerName]
	return rec, ok
}

// Evict drops the memoized record for a career name so the next Analyze
// call runs the pipeline again.
func (a *Analyzer) Evict(careerName string) {
	delete(a.records, careerName)
}

// Analyze produces the consolidated record for a career name. It never
// fails outward: if any query cannot be answered after retries, the
// returned record carries explicit error placeholders in all four fields
// and is not memoized.
func (a *Analyzer) Analyze(ctx context.Context, careerName string, profile *UserProfile) *CareerRecord {
	engine.IncrAnalyzeRequests()

	if rec, ok := a.records[careerName]; ok {
		return rec
	}

	level := LevelBeginner
	if profile != nil {
		level = ExperienceLevel(profile.ExperienceYears)
	}

	queries := []struct {
		key   string
		query string
		title string
	}{
		{
			key:   engine.CacheKey(careerName, "overview"),
			query: fmt.Sprintf(overviewQuery, careerName),
			title: careerName + " Career Analysis",
		},
		{
			key:   engine.CacheKey(careerName, "market"),
			query: fmt.Sprintf(marketQuery, careerName),
			title: careerName + " Market Analysis",
		},
		{
			key:   engine.CacheKey(careerName, "roadmap", level),
			query: fmt.Sprintf(roadmapQuery, careerName, level),
			title: careerName + " Learning Roadmap",
		},
		{
			key:   engine.CacheKey(careerName, "insights"),
			query: fmt.Sprintf(insightsQuery, careerName),
			title: careerName + " Industry Insights",
		},
	}

	sections := make([]string, len(queries))
	for i, q := range queries {
		text, err := a.queryWithCache(ctx, q.key, q.query)
		if err != nil {
			slog.Warn("analyze: query failed",
				slog.String("career", careerName),
				slog.String("title", q.title),
				slog.Any("error", err))
			return a.degradedRecord(careerName, err)
		}
		sections[i] = formatSection(q.title, text)
	}

	rec := &CareerRecord{
		CareerName:       careerName,
		Research:         sections[0],
		MarketAnalysis:   sections[1],
		LearningRoadmap:  sections[2],
		IndustryInsights: sections[3],
		Timestamp:        a.now(),
	}
	a.records[careerName] = rec
	return rec
}

// queryWithCache answers one analysis query, consulting the session cache
// first. A fresh LLM answer is retried a few times and paced by the
// limiter so four back-to-back queries don't hammer the provider.
func (a *Analyzer) queryWithCache(ctx context.Context, key, query string) (string, error) {
	if text, ok := a.cache.Get(key); ok {
		return text, nil
	}

	prompt := fmt.Sprintf(comprehensivePrompt, query)

	var lastErr error
	for attempt := 0; attempt < a.queryRetries; attempt++ {
		if err := a.limiter.Wait(ctx); err != nil {
			return "", err
		}
		text, err := engine.CallLLM(ctx, prompt, engine.WithMaxTokens(3500))
		if err == nil {
			a.cache.Put(key, text)
			return text, nil
		}
		lastErr = err
		if attempt < a.queryRetries-1 {
			select {
			case <-time.After(a.retryWait):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}
	return "", fmt.Errorf("query failed after %d attempts: %w", a.queryRetries, lastErr)
}

// formatSection wraps a query result into a titled markdown block.
func formatSection(title, text string) string {
	if text == "" {
		return "# " + title + "\n\nNo results available or error occurred."
	}
	return "# " + title + "\n\n" + text
}

// degradedRecord is the complete-but-degraded result returned when the
// pipeline cannot finish. It is not memoized, so a later Analyze call
// gets a fresh attempt.
func (a *Analyzer) degradedRecord(careerName string, err error) *CareerRecord {
	return &CareerRecord{
		CareerName:       careerName,
		Research:         fmt.Sprintf("Error analyzing career: %v. Please check your LLM API key.", err),
		MarketAnalysis:   "Market analysis not available due to an error.",
		LearningRoadmap:  "Learning roadmap not available due to an error.",
		IndustryInsights: "Industry insights not available due to an error.",
		Timestamp:        a.now(),
	}
}
