package careerserver

import "github.com/anatolykoptev/go_career/internal/career"

// AnalyzeInput is the input for career_analyze.
type AnalyzeInput struct {
	SessionID  string              `json:"session_id,omitempty"`
	CareerName string              `json:"career_name"`
	Profile    *career.UserProfile `json:"profile,omitempty"`
	Refresh    bool                `json:"refresh,omitempty"`
}

// AnalyzeOutput is the consolidated analysis for one career.
type AnalyzeOutput struct {
	Record *career.CareerRecord `json:"record"`
	Cached bool                 `json:"cached"`
}

// ChatInput is the input for career_chat.
type ChatInput struct {
	SessionID  string `json:"session_id,omitempty"`
	CareerName string `json:"career_name,omitempty"`
	Question   string `json:"question"`
}

// ChatOutput carries the assistant's answer and the retained transcript.
// Welcome is set only on the first turn of a conversation.
type ChatOutput struct {
	Answer  string        `json:"answer"`
	Welcome string        `json:"welcome,omitempty"`
	History []career.Turn `json:"history"`
}

// ChartsInput is the input for career_charts. Seed fixes the jitter for
// reproducible output; zero means time-seeded.
type ChartsInput struct {
	SessionID  string `json:"session_id,omitempty"`
	CareerName string `json:"career_name"`
	Seed       int64  `json:"seed,omitempty"`
}

// EmailInput is the input for career_email_report. Mode is "simple"
// (deterministic summary, default) or "composed" (LLM-written).
type EmailInput struct {
	SessionID      string `json:"session_id,omitempty"`
	CareerName     string `json:"career_name"`
	RecipientEmail string `json:"recipient_email"`
	RecipientName  string `json:"recipient_name,omitempty"`
	Mode           string `json:"mode,omitempty"`
}

// OptionsInput is the input for career_options.
type OptionsInput struct{}

// OptionsOutput is the browsable career catalog.
type OptionsOutput struct {
	Categories []career.Category `json:"categories"`
}
