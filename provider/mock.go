package provider

import (
	"context"
	"fmt"
	"sync"
)

// Mock is a canned-translation provider for tests and demos.
type Mock struct {
	Translations map[string]string // Map of source text to translation
	Err          error             // When set, every Translate call fails with it

	mu          sync.Mutex
	callCount   int
	lastRequest *Request
}

// NewMock creates a mock provider with default translations.
func NewMock() *Mock {
	return &Mock{
		Translations: map[string]string{
			"Hello":        "Merhaba",
			"Hello world":  "Merhaba dünya",
			"Good morning": "Günaydın",
			"Thank you":    "Teşekkürler",
		},
	}
}

// Translate returns the canned translation, or the bracketed source text
// for unknown inputs.
func (m *Mock) Translate(_ context.Context, req Request) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.lastRequest = &req
	m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}

	if translation, ok := m.Translations[req.Text]; ok {
		return translation, nil
	}
	return fmt.Sprintf("[%s]", req.Text), nil
}

// CallCount returns how many times Translate was called.
func (m *Mock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastRequest returns the most recent request, or nil.
func (m *Mock) LastRequest() *Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastRequest
}

// Reset clears the call count and last request.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.lastRequest = nil
}

// Verify Mock implements Provider
var _ Provider = (*Mock)(nil)
