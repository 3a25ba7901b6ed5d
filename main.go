// go_career — AI Career Guidance MCP server.
//
// Exposes five MCP tools: career_analyze, career_chat, career_charts,
// career_email_report, career_options. Runs as HTTP MCP server or stdio
// transport.
package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_career/internal/careerserver"
	"github.com/anatolykoptev/go_career/internal/engine"
	"github.com/anatolykoptev/go_career/internal/mail"
	"github.com/anatolykoptev/go_career/internal/session"
)

var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env", slog.Any("error", err))
	}

	mcpPort := env.Str("MCP_PORT", "8892")

	if !initEngine() {
		os.Exit(1)
	}

	slog.Info("starting go_career",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_career",
		Version: version,
	}, nil)

	careerserver.RegisterTools(server, session.NewManager(), mail.NewSender())
	slog.Info("tools registered", slog.Int("count", 5))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_career",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 600 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() bool {
	c := engine.Config{
		LLMAPIKey:      env.Str("LLM_API_KEY", ""),
		LLMAPIBase:     env.Str("LLM_API_BASE", "https://api.mistral.ai/v1/chat/completions"),
		LLMModel:       env.Str("LLM_MODEL", "mistral-large-latest"),
		LLMTemperature: env.Float("LLM_TEMPERATURE", 0.2),
		LLMMaxTokens:   env.Int("LLM_MAX_TOKENS", 3000),
		LLMTimeout:     env.Duration("LLM_TIMEOUT", 45*time.Second),
		LLMRetryWait:   env.Duration("LLM_RETRY_WAIT", 5*time.Second),

		CacheTTL:      env.Duration("CACHE_TTL", engine.DefaultCacheTTL),
		QueryInterval: env.Duration("QUERY_INTERVAL", time.Second),

		SMTPHost:       env.Str("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:       env.Int("SMTP_PORT", 587),
		SenderEmail:    env.Str("SENDER_EMAIL", ""),
		SenderPassword: env.Str("SENDER_PASSWORD", ""),
		SenderName:     env.Str("SENDER_NAME", "Career Guidance Assistant"),
	}

	if c.LLMAPIKey == "" {
		slog.Error("LLM_API_KEY is not set: get an API key from your LLM provider and export LLM_API_KEY (or put it in .env)")
		return false
	}

	c.LLMClient = engine.NewClient(c.LLMAPIBase, c.LLMAPIKey, c.LLMModel,
		engine.WithDefaultMaxTokens(c.LLMMaxTokens),
		engine.WithDefaultTemperature(c.LLMTemperature),
		engine.WithRetryWait(c.LLMRetryWait),
		engine.WithHTTPClient(&http.Client{Timeout: c.LLMTimeout}),
	)

	engine.Init(c)
	return true
}
