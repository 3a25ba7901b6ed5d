package career

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/anatolykoptev/go_career/internal/engine"
)

// stubCompleter echoes a fixed reply (or error) and counts calls.
type stubCompleter struct {
	calls int
	reply func(prompt string) (string, error)
}

func (s *stubCompleter) Complete(_ context.Context, prompt string, _ ...engine.CompleteOption) (string, error) {
	s.calls++
	return s.reply(prompt)
}

func initTestEngine(stub *stubCompleter) {
	engine.Init(engine.Config{
		LLMClient:     stub,
		QueryInterval: time.Millisecond,
	})
}

func newTestAnalyzer() *Analyzer {
	a := NewAnalyzer(engine.NewResponseCache(time.Hour))
	a.retryWait = 0
	return a
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("four sections populated", func(t *testing.T) {
		stub := &stubCompleter{reply: func(prompt string) (string, error) {
			return "answer for: " + engine.Truncate(prompt, 60), nil
		}}
		initTestEngine(stub)

		a := newTestAnalyzer()
		rec := a.Analyze(ctx, "Data Scientist", &UserProfile{Name: "Sam", ExperienceYears: 5})

		if rec.CareerName != "Data Scientist" {
			t.Errorf("CareerName = %q", rec.CareerName)
		}
		if stub.calls != 4 {
			t.Errorf("LLM calls = %d, want 4", stub.calls)
		}
		sections := map[string]string{
			"Data Scientist Career Analysis":   rec.Research,
			"Data Scientist Market Analysis":   rec.MarketAnalysis,
			"Data Scientist Learning Roadmap":  rec.LearningRoadmap,
			"Data Scientist Industry Insights": rec.IndustryInsights,
		}
		for title, text := range sections {
			if !strings.HasPrefix(text, "# "+title+"\n\n") {
				t.Errorf("section %q not titled, got prefix %q", title, engine.Truncate(text, 50))
			}
			if !strings.Contains(text, "answer for:") {
				t.Errorf("section %q missing body", title)
			}
		}
		if rec.Timestamp.IsZero() {
			t.Error("Timestamp is zero")
		}
	})

	t.Run("memoized per name", func(t *testing.T) {
		stub := &stubCompleter{reply: func(string) (string, error) { return "text", nil }}
		initTestEngine(stub)

		a := newTestAnalyzer()
		first := a.Analyze(ctx, "Nurse", &UserProfile{ExperienceYears: 1})
		second := a.Analyze(ctx, "Nurse", &UserProfile{ExperienceYears: 20})

		if first != second {
			t.Error("repeat Analyze returned a different record")
		}
		if stub.calls != 4 {
			t.Errorf("LLM calls = %d, want 4 (memo hit issues none)", stub.calls)
		}
	})

	t.Run("evict forces re-run", func(t *testing.T) {
		stub := &stubCompleter{reply: func(string) (string, error) { return "text", nil }}
		initTestEngine(stub)

		a := newTestAnalyzer()
		a.Analyze(ctx, "Nurse", nil)
		a.Evict("Nurse")
		a.Analyze(ctx, "Nurse", nil)

		// The session cache still answers the re-run, so no new LLM calls.
		if stub.calls != 4 {
			t.Errorf("LLM calls = %d, want 4", stub.calls)
		}
	})

	t.Run("roadmap uses experience level", func(t *testing.T) {
		var prompts []string
		stub := &stubCompleter{reply: func(prompt string) (string, error) {
			prompts = append(prompts, prompt)
			return "text", nil
		}}
		initTestEngine(stub)

		newTestAnalyzer().Analyze(ctx, "Teacher", &UserProfile{ExperienceYears: 12})

		found := false
		for _, p := range prompts {
			if strings.Contains(p, "at the advanced level") {
				found = true
			}
		}
		if !found {
			t.Error("no prompt mentioned the advanced level")
		}
	})

	t.Run("degraded on persistent failure", func(t *testing.T) {
		stub := &stubCompleter{reply: func(string) (string, error) {
			return "", errors.New("provider down")
		}}
		initTestEngine(stub)

		a := newTestAnalyzer()
		rec := a.Analyze(ctx, "Pilot", nil)

		if !strings.Contains(rec.Research, "Error analyzing career:") {
			t.Errorf("Research = %q", rec.Research)
		}
		if !strings.Contains(rec.MarketAnalysis, "not available due to an error") {
			t.Errorf("MarketAnalysis = %q", rec.MarketAnalysis)
		}
		if _, ok := a.Record("Pilot"); ok {
			t.Error("degraded record was memoized")
		}
		// First query retried three times, then the pipeline stopped.
		if stub.calls != 3 {
			t.Errorf("LLM calls = %d, want 3", stub.calls)
		}
	})

	t.Run("shared cache reused across analyzers", func(t *testing.T) {
		stub := &stubCompleter{reply: func(string) (string, error) { return "text", nil }}
		initTestEngine(stub)

		cache := engine.NewResponseCache(time.Hour)
		a1 := NewAnalyzer(cache)
		a1.retryWait = 0
		a1.Analyze(ctx, "Chef", nil)

		a2 := NewAnalyzer(cache)
		a2.retryWait = 0
		a2.Analyze(ctx, "Chef", nil)

		if stub.calls != 4 {
			t.Errorf("LLM calls = %d, want 4 (second analyzer served from cache)", stub.calls)
		}
	})
}

func TestFormatSection(t *testing.T) {
	if got := formatSection("T", "body"); got != "# T\n\nbody" {
		t.Errorf("formatSection = %q", got)
	}
	if got := formatSection("T", ""); got != "# T\n\nNo results available or error occurred." {
		t.Errorf("formatSection on empty = %q", got)
	}
}

func TestQueryWithCacheRecovers(t *testing.T) {
	calls := 0
	stub := &stubCompleter{reply: func(string) (string, error) {
		calls++
		if calls < 3 {
			return "", fmt.Errorf("flaky")
		}
		return "third time lucky", nil
	}}
	initTestEngine(stub)

	a := newTestAnalyzer()
	got, err := a.queryWithCache(context.Background(), engine.CacheKey("k"), "query")
	if err != nil {
		t.Fatalf("queryWithCache() error = %v", err)
	}
	if got != "third time lucky" {
		t.Errorf("queryWithCache() = %q", got)
	}
}
