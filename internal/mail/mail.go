// Package mail delivers career analysis reports over SMTP. The markdown
// report is rendered to a styled HTML alternative; a plain-text part is
// always attached for clients that prefer it.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	gomail "github.com/wneessen/go-mail"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/anatolykoptev/go_career/internal/engine"
)

// SendResult reports the outcome of one delivery attempt. Sending is a
// best-effort operation: failures are described here, never returned as
// errors, so a broken SMTP setup cannot fail the surrounding workflow.
type SendResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// Sender holds SMTP credentials for report delivery.
type Sender struct {
	host     string
	port     int
	account  string
	password string
	fromName string

	// dial is swapped in tests to avoid a live SMTP connection.
	dial func(ctx context.Context, msg *gomail.Msg) error
}

// NewSender builds a sender from the engine configuration.
func NewSender() *Sender {
	s := &Sender{
		host:     engine.Cfg.SMTPHost,
		port:     engine.Cfg.SMTPPort,
		account:  engine.Cfg.SenderEmail,
		password: engine.Cfg.SenderPassword,
		fromName: engine.Cfg.SenderName,
	}
	if s.fromName == "" {
		s.fromName = "Career Guidance Assistant"
	}
	s.dial = s.dialAndSend
	return s
}

// Configured reports whether the sender has the credentials needed to
// attempt a delivery.
func (s *Sender) Configured() bool {
	return s.host != "" && s.account != "" && s.password != ""
}

// Send delivers a markdown report to a single recipient. The body is sent
// as text/plain with a rendered HTML alternative.
func (s *Sender) Send(ctx context.Context, to, subject, markdownBody string) SendResult {
	if !s.Configured() {
		engine.IncrEmailErrors()
		return SendResult{
			OK:      false,
			Message: "email is not configured: set SMTP_HOST, SENDER_EMAIL and SENDER_PASSWORD",
		}
	}

	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.account); err != nil {
		engine.IncrEmailErrors()
		return SendResult{OK: false, Message: fmt.Sprintf("invalid sender address: %v", err)}
	}
	if err := msg.To(to); err != nil {
		engine.IncrEmailErrors()
		return SendResult{OK: false, Message: fmt.Sprintf("invalid recipient address %q: %v", to, err)}
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, markdownBody)

	html, err := RenderHTML(markdownBody)
	if err != nil {
		slog.Warn("html render failed, sending plain text only", "error", err)
	} else {
		msg.AddAlternativeString(gomail.TypeTextHTML, html)
	}

	if err := s.dial(ctx, msg); err != nil {
		engine.IncrEmailErrors()
		slog.Error("email send failed", "to", to, "error", err)
		return SendResult{OK: false, Message: fmt.Sprintf("failed to send report: %v", err)}
	}

	engine.IncrEmailSends()
	slog.Info("report sent", "to", to, "subject", subject)
	return SendResult{OK: true, Message: fmt.Sprintf("report sent to %s", to)}
}

func (s *Sender) dialAndSend(ctx context.Context, msg *gomail.Msg) error {
	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.account),
		gomail.WithPassword(s.password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// RenderHTML converts a markdown report into the styled HTML email shell.
func RenderHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return fmt.Sprintf(htmlShell, buf.String(), time.Now().Format("January 2, 2006 at 15:04")), nil
}

const htmlShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: 'Segoe UI', Arial, sans-serif; line-height: 1.6; color: #333; max-width: 800px; margin: 0 auto; padding: 20px; }
  .header { background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); color: white; padding: 30px; border-radius: 10px 10px 0 0; text-align: center; }
  .content { background: #ffffff; padding: 30px; border: 1px solid #e0e0e0; }
  .content h1, .content h2 { color: #4a5568; border-bottom: 2px solid #e2e8f0; padding-bottom: 8px; }
  .content table { border-collapse: collapse; width: 100%%; }
  .content th, .content td { border: 1px solid #e0e0e0; padding: 8px; text-align: left; }
  .footer { background: #f7fafc; padding: 20px; border-radius: 0 0 10px 10px; text-align: center; font-size: 12px; color: #718096; }
</style>
</head>
<body>
<div class="header"><h1>Career Guidance Report</h1></div>
<div class="content">
%s
</div>
<div class="footer">Generated on %s by your Career Guidance Assistant</div>
</body>
</html>`
