package tmcache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func testRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  10 * time.Millisecond,
		MaxDelay:   100 * time.Millisecond,
	}
}

func TestWithRetry_Success(t *testing.T) {
	callCount := 0
	result, err := WithRetry(context.Background(), testRetryConfig(), func() (string, error) {
		callCount++
		return "success", nil
	})

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result != "success" {
		t.Errorf("Expected 'success', got %q", result)
	}
	if callCount != 1 {
		t.Errorf("Expected 1 call, got %d", callCount)
	}
}

func TestWithRetry_RetryableError(t *testing.T) {
	callCount := 0
	result, err := WithRetry(context.Background(), testRetryConfig(), func() (string, error) {
		callCount++
		if callCount < 3 {
			return "", &ProviderError{Message: "rate limited", Retryable: true}
		}
		return "success", nil
	})

	if err != nil {
		t.Fatalf("Expected no error after retries, got: %v", err)
	}
	if result != "success" {
		t.Errorf("Expected 'success', got %q", result)
	}
	if callCount != 3 {
		t.Errorf("Expected 3 calls, got %d", callCount)
	}
}

func TestWithRetry_NonRetryableError(t *testing.T) {
	callCount := 0
	_, err := WithRetry(context.Background(), testRetryConfig(), func() (string, error) {
		callCount++
		return "", &ProviderError{Message: "invalid API key", Retryable: false}
	})

	if err == nil {
		t.Fatal("Expected an error")
	}
	if callCount != 1 {
		t.Errorf("Non-retryable error should not be retried, got %d calls", callCount)
	}
}

func TestWithRetry_Exhausted(t *testing.T) {
	callCount := 0
	_, err := WithRetry(context.Background(), testRetryConfig(), func() (string, error) {
		callCount++
		return "", &ProviderError{Message: "still failing", Retryable: true}
	})

	if err == nil {
		t.Fatal("Expected the last error after exhausting retries")
	}
	// MaxRetries=3 means 1 initial attempt + 3 retries
	if callCount != 4 {
		t.Errorf("Expected 4 calls, got %d", callCount)
	}
}

func TestWithRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	callCount := 0
	_, err := WithRetry(ctx, testRetryConfig(), func() (string, error) {
		callCount++
		return "", &ProviderError{Message: "rate limited", Retryable: true}
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got: %v", err)
	}
	if callCount != 0 {
		t.Errorf("Expected no calls with cancelled context, got %d", callCount)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil", nil, false},
		{"retryable provider error", &ProviderError{Retryable: true}, true},
		{"non-retryable provider error", &ProviderError{Retryable: false}, false},
		{"context canceled", context.Canceled, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.expected {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}

// flakyProvider fails a fixed number of times before succeeding.
type flakyProvider struct {
	failures int
	calls    int
}

func (p *flakyProvider) Translate(_ context.Context, req Request) (string, error) {
	p.calls++
	if p.calls <= p.failures {
		return "", &ProviderError{Message: "temporary", Retryable: true}
	}
	return "Merhaba", nil
}

func TestRetryableProvider(t *testing.T) {
	inner := &flakyProvider{failures: 2}
	p := NewRetryableProvider(inner, testRetryConfig())

	got, err := p.Translate(context.Background(), Request{Text: "Hello", TargetLang: "tr"})
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if got != "Merhaba" {
		t.Errorf("Expected 'Merhaba', got %q", got)
	}
	if inner.calls != 3 {
		t.Errorf("Expected 3 calls, got %d", inner.calls)
	}
}
