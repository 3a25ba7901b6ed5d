package mail

import (
	"context"
	"errors"
	"strings"
	"testing"

	gomail "github.com/wneessen/go-mail"

	"github.com/anatolykoptev/go_career/internal/engine"
)

func testSender() *Sender {
	engine.Init(engine.Config{
		SMTPHost:       "smtp.example.com",
		SMTPPort:       587,
		SenderEmail:    "reports@example.com",
		SenderPassword: "secret",
		SenderName:     "Career Reports",
	})
	return NewSender()
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML("# Title\n\nSome **bold** text.\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	for _, want := range []string{"<h1", "<strong>bold</strong>", "<table>", "Career Guidance Report", "Generated on"} {
		if !strings.Contains(html, want) {
			t.Errorf("html missing %q", want)
		}
	}
}

func TestSend(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers message", func(t *testing.T) {
		s := testSender()
		var sent *gomail.Msg
		s.dial = func(_ context.Context, msg *gomail.Msg) error {
			sent = msg
			return nil
		}

		res := s.Send(ctx, "user@example.com", "Your Report", "# Hello")
		if !res.OK {
			t.Fatalf("Send() failed: %s", res.Message)
		}
		if sent == nil {
			t.Fatal("no message dialed")
		}
		if got := sent.GetGenHeader(gomail.HeaderSubject); len(got) == 0 || got[0] != "Your Report" {
			t.Errorf("subject = %v", got)
		}
	})

	t.Run("dial failure reported, not returned", func(t *testing.T) {
		s := testSender()
		s.dial = func(context.Context, *gomail.Msg) error {
			return errors.New("connection refused")
		}

		res := s.Send(ctx, "user@example.com", "S", "body")
		if res.OK {
			t.Fatal("Send() reported success on dial failure")
		}
		if !strings.Contains(res.Message, "failed to send report") {
			t.Errorf("message = %q", res.Message)
		}
	})

	t.Run("missing credentials", func(t *testing.T) {
		engine.Init(engine.Config{})
		s := NewSender()

		res := s.Send(ctx, "user@example.com", "S", "body")
		if res.OK {
			t.Fatal("Send() reported success without credentials")
		}
		if !strings.Contains(res.Message, "not configured") {
			t.Errorf("message = %q", res.Message)
		}
	})

	t.Run("invalid recipient", func(t *testing.T) {
		s := testSender()
		s.dial = func(context.Context, *gomail.Msg) error {
			t.Fatal("dialed despite invalid recipient")
			return nil
		}

		res := s.Send(ctx, "not-an-address", "S", "body")
		if res.OK {
			t.Fatal("Send() accepted an invalid recipient")
		}
	})
}
