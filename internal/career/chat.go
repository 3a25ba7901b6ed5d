package career

import (
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_career/internal/engine"
)

// Conversation roles as they appear in the transcript.
const (
	RoleUser      = "User"
	RoleAssistant = "Career Assistant"
)

// History bounds: turns kept in memory vs turns embedded in the prompt.
const (
	historyKept     = 10
	historyInPrompt = 6
	turnExcerptLen  = 200
	fieldExcerptLen = 1500
)

// Turn is one entry in the conversation history.
type Turn struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

// contextGroups route a question to record excerpts by keyword. A question
// can match several groups and collect several excerpts; matching none
// leaves the context empty and the assistant falls back to general advice.
var contextGroups = []struct {
	label    string
	keywords []string
	field    func(*CareerRecord) string
}{
	{
		label:    "Career Overview",
		keywords: []string{"overview", "what", "role", "responsibility", "do"},
		field:    func(r *CareerRecord) string { return r.Research },
	},
	{
		label:    "Market Analysis",
		keywords: []string{"market", "salary", "pay", "job", "demand", "trend", "growth", "money"},
		field:    func(r *CareerRecord) string { return r.MarketAnalysis },
	},
	{
		label:    "Learning Roadmap",
		keywords: []string{"learn", "skill", "education", "study", "course", "training", "how"},
		field:    func(r *CareerRecord) string { return r.LearningRoadmap },
	},
	{
		label:    "Industry Insights",
		keywords: []string{"culture", "work", "day", "balance", "environment", "life", "stress"},
		field:    func(r *CareerRecord) string { return r.IndustryInsights },
	},
}

// Assistant answers follow-up questions about an analyzed career. It keeps
// a bounded conversation history and is owned by one session.
type Assistant struct {
	history []Turn
}

// NewAssistant creates an assistant with empty history.
func NewAssistant() *Assistant {
	return &Assistant{}
}

// History returns the retained conversation turns, oldest first.
func (a *Assistant) History() []Turn {
	return a.history
}

// Reset clears the conversation history.
func (a *Assistant) Reset() {
	a.history = nil
}

// Ask answers a question in the context of the given record (which may be
// nil for general guidance). It is total: an LLM failure becomes a
// user-visible answer and is recorded in history like any other turn.
func (a *Assistant) Ask(ctx context.Context, question string, rec *CareerRecord) string {
	engine.IncrChatRequests()
	a.addTurn(RoleUser, question)

	prompt := fmt.Sprintf(chatPrompt, BuildContext(question, rec), a.formattedHistory(), question)

	answer, err := engine.CallLLM(ctx, prompt,
		engine.WithMaxTokens(1800),
		engine.WithTemperature(0.3),
	)
	if err != nil {
		answer = fmt.Sprintf("I encountered an error while processing your question: %v", err)
	}

	a.addTurn(RoleAssistant, answer)
	return answer
}

// welcomeWithCareer greets a session that already has an analyzed career.
const welcomeWithCareer = `Hello! I'm your AI Career Assistant.

I'm here to help you with questions about **%s** or career guidance in general!

What I can help you with:
- Career requirements and skills
- Salary information and market trends
- Learning paths and resources
- Industry insights and work culture
- Career progression strategies

Feel free to ask me anything!`

const welcomeGeneral = "Hello! I'm your AI Career Assistant. How can I help you with your career questions today?"

// Welcome returns the assistant's opening message for a fresh
// conversation, templated with the career name when one is analyzed.
func Welcome(rec *CareerRecord) string {
	if rec == nil || rec.CareerName == "" {
		return welcomeGeneral
	}
	return fmt.Sprintf(welcomeWithCareer, rec.CareerName)
}

// BuildContext assembles the record excerpts relevant to a question.
// Exported for tests and for callers that preview prompt routing.
func BuildContext(question string, rec *CareerRecord) string {
	if rec == nil {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Career context: %s\n\n", rec.CareerName)

	lower := strings.ToLower(question)
	matched := false
	for _, g := range contextGroups {
		if !matchesAny(lower, g.keywords) {
			continue
		}
		matched = true
		fmt.Fprintf(&sb, "%s:\n%s\n\n", g.label, engine.Truncate(g.field(rec), fieldExcerptLen))
	}
	if !matched {
		return ""
	}
	return sb.String()
}

func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// addTurn appends a turn and drops the oldest beyond the retention window.
func (a *Assistant) addTurn(role, message string) {
	a.history = append(a.history, Turn{Role: role, Message: message})
	if len(a.history) > historyKept {
		a.history = a.history[len(a.history)-historyKept:]
	}
}

// formattedHistory renders the most recent turns as a transcript, each
// truncated so the prompt stays bounded.
func (a *Assistant) formattedHistory() string {
	start := 0
	if len(a.history) > historyInPrompt {
		start = len(a.history) - historyInPrompt
	}
	var sb strings.Builder
	for _, t := range a.history[start:] {
		fmt.Fprintf(&sb, "%s: %s...\n", t.Role, engine.Truncate(t.Message, turnExcerptLen))
	}
	return sb.String()
}
