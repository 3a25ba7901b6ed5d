package careerserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_career/internal/career"
	"github.com/anatolykoptev/go_career/internal/mail"
	"github.com/anatolykoptev/go_career/internal/session"
)

func registerEmailReport(server *mcp.Server, sessions *session.Manager, sender *mail.Sender) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "career_email_report",
		Description: "Email the stored career analysis as a formatted report. Mode \"simple\" (default) sends a deterministic summary; \"composed\" has the LLM write the email and falls back to the summary on failure. Delivery problems are reported in the result, never as a tool error.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input EmailInput) (*mcp.CallToolResult, mail.SendResult, error) {
		if input.CareerName == "" {
			return nil, mail.SendResult{}, fmt.Errorf("career_name is required")
		}
		if input.RecipientEmail == "" {
			return nil, mail.SendResult{}, fmt.Errorf("recipient_email is required")
		}

		sess := sessions.Get(input.SessionID)
		rec, ok := sess.Analyzer.Record(input.CareerName)
		if !ok {
			return nil, mail.SendResult{}, fmt.Errorf("no analysis for %q: run career_analyze first", input.CareerName)
		}

		var subject, body string
		switch input.Mode {
		case "", "simple":
			subject, body = career.RenderSummary(rec, input.RecipientName)
		case "composed":
			var err error
			subject, body, err = career.ComposeReport(ctx, rec, input.RecipientName)
			if err != nil {
				slog.Warn("composed report failed, sending summary", "error", err)
			}
		default:
			return nil, mail.SendResult{}, fmt.Errorf("unknown mode %q: use simple or composed", input.Mode)
		}

		return nil, sender.Send(ctx, input.RecipientEmail, subject, body), nil
	})
}
