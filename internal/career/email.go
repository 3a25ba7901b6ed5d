package career

import (
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_career/internal/engine"
)

// Excerpt bounds for the two report variants.
const (
	summaryExcerptLen = 500
	composeExcerptLen = 1000
)

const defaultRecipientName = "Career Explorer"

// RenderSummary builds the deterministic markdown report for a record:
// greeting, a bounded excerpt of each analysis section, and a next-steps
// block. It never calls the LLM and always succeeds.
func RenderSummary(rec *CareerRecord, recipientName string) (subject, body string) {
	if recipientName == "" {
		recipientName = defaultRecipientName
	}
	subject = fmt.Sprintf("Your %s Career Analysis Report", rec.CareerName)

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s Career Analysis Report\n\n", rec.CareerName)
	fmt.Fprintf(&sb, "Dear %s,\n\n", recipientName)
	fmt.Fprintf(&sb, "Here is your personalized career analysis for **%s**.\n\n", rec.CareerName)

	sections := []struct {
		title string
		text  string
	}{
		{"Career Overview", rec.Research},
		{"Market Analysis", rec.MarketAnalysis},
		{"Learning Roadmap", rec.LearningRoadmap},
		{"Industry Insights", rec.IndustryInsights},
	}
	for _, s := range sections {
		fmt.Fprintf(&sb, "## %s\n\n%s\n\n", s.title, engine.Truncate(s.text, summaryExcerptLen))
	}

	sb.WriteString("## Next Steps\n\n")
	sb.WriteString("- Review the learning roadmap and pick your first milestone\n")
	sb.WriteString("- Research the companies and industries highlighted above\n")
	sb.WriteString("- Connect with professionals already working in this field\n")
	sb.WriteString("- Revisit this analysis as your goals evolve\n\n")
	sb.WriteString("Best regards,\nYour Career Guidance Assistant\n")

	return subject, sb.String()
}

// ComposeReport asks the LLM to write the report email from bounded
// section excerpts. If the call fails or the reply cannot be split into
// subject and content, it falls back to the deterministic summary so the
// caller always gets a sendable report.
func ComposeReport(ctx context.Context, rec *CareerRecord, recipientName string) (subject, body string, err error) {
	if recipientName == "" {
		recipientName = defaultRecipientName
	}

	prompt := fmt.Sprintf(composePrompt,
		recipientName,
		rec.CareerName,
		engine.Truncate(rec.Research, composeExcerptLen),
		engine.Truncate(rec.MarketAnalysis, composeExcerptLen),
		engine.Truncate(rec.LearningRoadmap, composeExcerptLen),
		engine.Truncate(rec.IndustryInsights, composeExcerptLen),
		recipientName,
	)

	raw, err := engine.CallLLM(ctx, prompt, engine.WithMaxTokens(3000))
	if err != nil {
		subject, body = RenderSummary(rec, recipientName)
		return subject, body, err
	}

	subject, body, ok := parseComposed(raw)
	if !ok {
		subject, body = RenderSummary(rec, recipientName)
	}
	return subject, body, nil
}

// parseComposed splits a composed reply on its SUBJECT:/CONTENT: markers.
func parseComposed(raw string) (subject, body string, ok bool) {
	subjIdx := strings.Index(raw, "SUBJECT:")
	contIdx := strings.Index(raw, "CONTENT:")
	if subjIdx < 0 || contIdx < 0 || contIdx < subjIdx {
		return "", "", false
	}

	subject = strings.TrimSpace(raw[subjIdx+len("SUBJECT:") : contIdx])
	body = strings.TrimSpace(raw[contIdx+len("CONTENT:"):])
	if subject == "" || body == "" {
		return "", "", false
	}
	return subject, body, true
}
