package careerserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_career/internal/career"
)

func registerOptions(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "career_options",
		Description: "Browse the catalog of career options grouped by category (technology, healthcare, business, creative, engineering, education). Useful as a starting point before career_analyze.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ OptionsInput) (*mcp.CallToolResult, OptionsOutput, error) {
		return nil, OptionsOutput{Categories: career.Options()}, nil
	})
}
