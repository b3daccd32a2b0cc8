package tmcache

import "fmt"

// Backend operation kinds used to classify I/O failures. Every backend
// error is absorbed at the TranslationMemory boundary: connect failures
// degrade the mode, read failures become misses, write failures are
// logged and dropped. Only compute errors reach the caller.
const (
	OpConnect = "connect"
	OpRead    = "read"
	OpWrite   = "write"
)

// BackendError wraps a backend I/O failure with the operation kind and
// the key involved (empty for connect failures).
type BackendError struct {
	Op    string
	Key   string
	Cause error
}

func (e *BackendError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("backend %s error for %s: %v", e.Op, e.Key, e.Cause)
	}
	return fmt.Sprintf("backend %s error: %v", e.Op, e.Cause)
}

func (e *BackendError) Unwrap() error {
	return e.Cause
}

// ProviderError indicates an AI provider failure (API error, rate limit,
// empty response, etc.).
type ProviderError struct {
	Message   string
	Cause     error
	Retryable bool // Whether the operation can be retried
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}
