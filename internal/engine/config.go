package engine

import (
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	LLMAPIBase     string
	LLMAPIKey      string
	LLMModel       string
	LLMTemperature float64
	LLMMaxTokens   int
	LLMTimeout     time.Duration
	LLMRetryWait   time.Duration // backoff before the single rate-limit retry

	CacheTTL      time.Duration // response cache validity window
	QueryInterval time.Duration // pacing between analysis pipeline queries

	SMTPHost       string
	SMTPPort       int
	SenderEmail    string
	SenderPassword string
	SenderName     string

	LLMClient Completer
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (career, mail).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
