package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	AnalyzeRequests atomic.Int64
	ChatRequests    atomic.Int64
	ChartRequests   atomic.Int64
	EmailSends      atomic.Int64
	EmailErrors     atomic.Int64
	LLMCalls        atomic.Int64
	LLMErrors       atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"analyze_requests": metrics.AnalyzeRequests.Load(),
		"chat_requests":    metrics.ChatRequests.Load(),
		"chart_requests":   metrics.ChartRequests.Load(),
		"email_sends":      metrics.EmailSends.Load(),
		"email_errors":     metrics.EmailErrors.Load(),
		"llm_calls":        metrics.LLMCalls.Load(),
		"llm_errors":       metrics.LLMErrors.Load(),
		"cache_hits":       hits,
		"cache_misses":     misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"analyze_requests", "chat_requests", "chart_requests",
		"email_sends", "email_errors",
		"llm_calls", "llm_errors",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the career/ and careerserver/ sub-packages.
func IncrAnalyzeRequests() { metrics.AnalyzeRequests.Add(1) }
func IncrChatRequests()    { metrics.ChatRequests.Add(1) }
func IncrChartRequests()   { metrics.ChartRequests.Add(1) }
func IncrEmailSends()      { metrics.EmailSends.Add(1) }
func IncrEmailErrors()     { metrics.EmailErrors.Add(1) }
