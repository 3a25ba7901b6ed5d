package session

import (
	"sync"
	"testing"
	"time"

	"github.com/anatolykoptev/go_career/internal/engine"
)

func TestManagerGet(t *testing.T) {
	engine.Init(engine.Config{QueryInterval: time.Millisecond})

	t.Run("creates on first use", func(t *testing.T) {
		m := NewManager()
		s := m.Get("alice")
		if s == nil || s.Cache == nil || s.Analyzer == nil || s.Chat == nil {
			t.Fatalf("incomplete session: %+v", s)
		}
		if s.ID != "alice" {
			t.Errorf("ID = %q", s.ID)
		}
		if m.Len() != 1 {
			t.Errorf("Len() = %d, want 1", m.Len())
		}
	})

	t.Run("same id returns same session", func(t *testing.T) {
		m := NewManager()
		if m.Get("a") != m.Get("a") {
			t.Error("repeat Get returned a new session")
		}
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		m := NewManager()
		a, b := m.Get("a"), m.Get("b")
		if a == b || a.Cache == b.Cache || a.Analyzer == b.Analyzer || a.Chat == b.Chat {
			t.Error("sessions share state")
		}
	})

	t.Run("empty id maps to default", func(t *testing.T) {
		m := NewManager()
		if m.Get("") != m.Get(DefaultID) {
			t.Error("empty id did not map to default session")
		}
	})

	t.Run("concurrent access", func(t *testing.T) {
		m := NewManager()
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				m.Get("shared")
			}()
		}
		wg.Wait()
		if m.Len() != 1 {
			t.Errorf("Len() = %d, want 1", m.Len())
		}
	})
}
