package tmcache

import (
	"errors"
	"testing"
)

func TestBackendError(t *testing.T) {
	cause := errors.New("connection reset")
	err := &BackendError{Op: OpRead, Key: "tm:tr:abc", Cause: cause}

	if err.Error() != "backend read error for tm:tr:abc: connection reset" {
		t.Errorf("unexpected error message: %s", err.Error())
	}

	if !errors.Is(err, cause) {
		t.Error("Unwrap() should expose the cause")
	}

	// Connect errors have no key
	err2 := &BackendError{Op: OpConnect, Cause: cause}
	if err2.Error() != "backend connect error: connection reset" {
		t.Errorf("unexpected error message: %s", err2.Error())
	}
}

func TestProviderError(t *testing.T) {
	err := &ProviderError{Message: "rate limited", Retryable: true}

	if err.Error() != "provider error: rate limited" {
		t.Errorf("unexpected error message: %s", err.Error())
	}

	if !err.Retryable {
		t.Error("error should be retryable")
	}

	cause := errors.New("429")
	err2 := &ProviderError{Message: "rate limited", Cause: cause}
	if err2.Error() != "provider error: rate limited: 429" {
		t.Errorf("unexpected error message: %s", err2.Error())
	}
	if err2.Unwrap() != cause {
		t.Error("Unwrap() should return the cause")
	}
}
