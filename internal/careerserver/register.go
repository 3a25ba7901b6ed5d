// Package careerserver exposes the career-exploration workflow as MCP
// tools: analysis, chat, charts, email reports, and the career catalog.
package careerserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_career/internal/mail"
	"github.com/anatolykoptev/go_career/internal/session"
)

// RegisterTools registers all career guidance tools on the given MCP
// server: career_analyze, career_chat, career_charts,
// career_email_report, career_options.
func RegisterTools(server *mcp.Server, sessions *session.Manager, sender *mail.Sender) {
	registerAnalyze(server, sessions)
	registerChat(server, sessions)
	registerCharts(server, sessions)
	registerEmailReport(server, sessions, sender)
	registerOptions(server)
}
