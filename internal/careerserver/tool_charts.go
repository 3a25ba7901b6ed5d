package careerserver

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_career/internal/career"
	"github.com/anatolykoptev/go_career/internal/session"
)

func registerCharts(server *mcp.Server, sessions *session.Manager) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "career_charts",
		Description: "Derive visualization data from a stored career analysis: top industry trends, salary progression by experience tier, skill importance, and hiring sector distribution. Requires career_analyze to have run first; pass a seed for reproducible scores.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ChartsInput) (*mcp.CallToolResult, career.ChartBundle, error) {
		if input.CareerName == "" {
			return nil, career.ChartBundle{}, fmt.Errorf("career_name is required")
		}

		sess := sessions.Get(input.SessionID)
		rec, ok := sess.Analyzer.Record(input.CareerName)
		if !ok {
			return nil, career.ChartBundle{}, fmt.Errorf("no analysis for %q: run career_analyze first", input.CareerName)
		}

		var rng *rand.Rand
		if input.Seed != 0 {
			rng = rand.New(rand.NewSource(input.Seed))
		}
		return nil, career.DeriveCharts(rec, rng), nil
	})
}
