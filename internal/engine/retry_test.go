package engine

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestRetryDo(t *testing.T) {
	ctx := context.Background()
	rc := RetryConfig{MaxRetries: 1, Wait: 0}

	t.Run("success first try", func(t *testing.T) {
		calls := 0
		got, err := RetryDo(ctx, rc, func() (string, error) {
			calls++
			return "ok", nil
		})
		if err != nil {
			t.Fatalf("RetryDo() error = %v", err)
		}
		if got != "ok" || calls != 1 {
			t.Errorf("got %q after %d calls, want %q after 1", got, calls, "ok")
		}
	})

	t.Run("retries rate limit once", func(t *testing.T) {
		calls := 0
		got, err := RetryDo(ctx, rc, func() (string, error) {
			calls++
			if calls == 1 {
				return "", &APIError{StatusCode: http.StatusTooManyRequests}
			}
			return "recovered", nil
		})
		if err != nil {
			t.Fatalf("RetryDo() error = %v", err)
		}
		if got != "recovered" || calls != 2 {
			t.Errorf("got %q after %d calls, want %q after 2", got, calls, "recovered")
		}
	})

	t.Run("persistent rate limit fails", func(t *testing.T) {
		calls := 0
		_, err := RetryDo(ctx, rc, func() (string, error) {
			calls++
			return "", &APIError{StatusCode: http.StatusTooManyRequests}
		})
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("RetryDo() error = %v, want *APIError", err)
		}
		if calls != 2 {
			t.Errorf("calls = %d, want 2 (one retry)", calls)
		}
	})

	t.Run("non-retryable fails fast", func(t *testing.T) {
		calls := 0
		_, err := RetryDo(ctx, rc, func() (string, error) {
			calls++
			return "", &APIError{StatusCode: http.StatusUnauthorized}
		})
		if err == nil {
			t.Fatal("RetryDo() error = nil")
		}
		if calls != 1 {
			t.Errorf("calls = %d, want 1", calls)
		}
	})

	t.Run("transport error fails fast", func(t *testing.T) {
		calls := 0
		_, err := RetryDo(ctx, rc, func() (string, error) {
			calls++
			return "", errors.New("connection refused")
		})
		if err == nil {
			t.Fatal("RetryDo() error = nil")
		}
		if calls != 1 {
			t.Errorf("calls = %d, want 1", calls)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := RetryDo(cctx, rc, func() (string, error) {
			t.Fatal("fn called with cancelled context")
			return "", nil
		})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{StatusCode: 500, Body: "backend exploded"}
	want := "api error: 500 - backend exploded"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	bare := &APIError{StatusCode: 429}
	if got := bare.Error(); got != "api error: 429 Too Many Requests" {
		t.Errorf("Error() = %q", got)
	}
}
