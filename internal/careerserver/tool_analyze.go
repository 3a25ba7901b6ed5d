package careerserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_career/internal/session"
)

func registerAnalyze(server *mcp.Server, sessions *session.Manager) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "career_analyze",
		Description: "Run a comprehensive analysis of a career: role overview, job market, a learning roadmap matched to the user's experience level, and industry insights. Results are memoized per session; set refresh to force a re-run.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input AnalyzeInput) (*mcp.CallToolResult, AnalyzeOutput, error) {
		if input.CareerName == "" {
			return nil, AnalyzeOutput{}, fmt.Errorf("career_name is required")
		}

		sess := sessions.Get(input.SessionID)
		if input.Refresh {
			sess.EvictRecord(input.CareerName)
		}

		_, cached := sess.Analyzer.Record(input.CareerName)
		rec := sess.Analyzer.Analyze(ctx, input.CareerName, input.Profile)

		return nil, AnalyzeOutput{Record: rec, Cached: cached}, nil
	})
}
