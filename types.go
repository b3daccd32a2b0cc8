package tmcache

import "context"

// Mode identifies which backend a TranslationMemory is running against.
// It is decided once during Connect and never changes afterwards.
type Mode int

const (
	// ModeUninitialized means Connect has not been called yet.
	ModeUninitialized Mode = iota
	// ModeRemote means the Redis backend is active.
	ModeRemote
	// ModeLocal means the file-backed local store is active.
	ModeLocal
	// ModeDisabled means no backend is available; every lookup misses
	// and writes are dropped.
	ModeDisabled
)

// String returns the mode name used in logs and health reports.
func (m Mode) String() string {
	switch m {
	case ModeRemote:
		return "remote"
	case ModeLocal:
		return "local"
	case ModeDisabled:
		return "disabled"
	default:
		return "uninitialized"
	}
}

// ComputeFunc produces a translation on a cache miss. It is supplied
// per call and owned by the caller; the memory never retries it and
// propagates its error unchanged.
type ComputeFunc func(ctx context.Context) (string, error)

// Provider is the interface for AI translation backends.
type Provider interface {
	Translate(ctx context.Context, req Request) (string, error)
}

// Request contains the parameters for a single translation.
type Request struct {
	Text          string   // Source text to translate
	TargetLang    string   // Target language code (e.g., "tr", "es")
	SourceLang    string   // Source language code (default: "en")
	Context       string   // Optional hint about the material (e.g., show title)
	PreviousLines []string // Subtitle lines immediately before Text
	NextLines     []string // Subtitle lines immediately after Text
}

// Compute adapts a Provider call into a ComputeFunc so it can be handed
// to TranslationMemory.GetOrCompute.
func Compute(p Provider, req Request) ComputeFunc {
	return func(ctx context.Context) (string, error) {
		return p.Translate(ctx, req)
	}
}
