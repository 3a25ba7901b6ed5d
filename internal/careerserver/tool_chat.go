package careerserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_career/internal/career"
	"github.com/anatolykoptev/go_career/internal/session"
)

func registerChat(server *mcp.Server, sessions *session.Manager) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "career_chat",
		Description: "Ask a follow-up question about an analyzed career. The answer is grounded in the stored analysis when the question matches it, and falls back to general career advice otherwise. Conversation history is kept per session.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ChatInput) (*mcp.CallToolResult, ChatOutput, error) {
		if input.Question == "" {
			return nil, ChatOutput{}, fmt.Errorf("question is required")
		}

		sess := sessions.Get(input.SessionID)

		var rec *career.CareerRecord
		if input.CareerName != "" {
			rec, _ = sess.Analyzer.Record(input.CareerName)
		}

		var welcome string
		if len(sess.Chat.History()) == 0 {
			welcome = career.Welcome(rec)
		}

		answer := sess.Chat.Ask(ctx, input.Question, rec)
		return nil, ChatOutput{Answer: answer, Welcome: welcome, History: sess.Chat.History()}, nil
	})
}
