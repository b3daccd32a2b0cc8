package tmcache

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/subtitlestudio/tmcache/backend"
)

// Defaults applied by New when the corresponding Config field is zero.
const (
	// DefaultTTLSeconds is the remote entry lifetime: 30 days.
	DefaultTTLSeconds = 2592000

	// DefaultLocalPath is the local store file, relative to the working
	// directory.
	DefaultLocalPath = "translation_memory.json"
)

// Config holds construction parameters for a TranslationMemory.
type Config struct {
	RedisURL   string // Redis connection URL; empty forces the local store
	TTLSeconds int    // Remote entry TTL in seconds (default: 30 days)
	LocalPath  string // Local store file path (default: "translation_memory.json")
}

// TranslationMemory is the cache-aside layer in front of an AI
// translation call. Construct with New, call Connect once at startup and
// Close once at shutdown. The backend mode is decided by that single
// Connect attempt and never changes for the life of the process.
type TranslationMemory struct {
	cfg      Config
	log      zerolog.Logger
	injected backend.Backend

	mu   sync.RWMutex
	be   backend.Backend
	mode Mode
}

// Option is a functional option for configuring a TranslationMemory.
type Option func(*TranslationMemory)

// WithLogger sets the diagnostic logger. Pass zerolog.Nop() to silence.
func WithLogger(log zerolog.Logger) Option {
	return func(m *TranslationMemory) {
		m.log = log
	}
}

// WithBackend injects a backend directly, skipping the connect fallback
// chain. Intended for tests that substitute an in-memory or
// fault-injecting fake.
func WithBackend(b backend.Backend) Option {
	return func(m *TranslationMemory) {
		m.injected = b
	}
}

// New creates a TranslationMemory. No I/O happens until Connect.
func New(cfg Config, opts ...Option) *TranslationMemory {
	if cfg.TTLSeconds <= 0 {
		cfg.TTLSeconds = DefaultTTLSeconds
	}
	if cfg.LocalPath == "" {
		cfg.LocalPath = DefaultLocalPath
	}

	m := &TranslationMemory{
		cfg:  cfg,
		log:  zerolog.New(os.Stderr).With().Timestamp().Str("component", "tmcache").Logger(),
		mode: ModeUninitialized,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Connect selects the backend: Redis when a usable URL is configured and
// the liveness probe succeeds, otherwise the local file store, otherwise
// no backend at all. It never returns an error; failures only degrade
// the resulting mode. Returns the mode for convenience.
func (m *TranslationMemory) Connect(ctx context.Context) Mode {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.injected != nil {
		m.be = m.injected
		m.mode = ModeRemote
		return m.mode
	}

	if m.cfg.RedisURL != "" {
		r, err := backend.NewRedis(ctx, backend.RedisConfig{
			URL: m.cfg.RedisURL,
			TTL: m.cfg.TTLSeconds,
		})
		if err == nil {
			m.be = r
			m.mode = ModeRemote
			m.log.Info().Str("mode", m.mode.String()).Msg("translation memory connected to Redis")
			return m.mode
		}
		berr := &BackendError{Op: OpConnect, Cause: err}
		m.log.Warn().Err(berr).Msg("Redis unreachable, falling back to local store")
	} else {
		m.log.Debug().Msg("no Redis URL configured, using local store")
	}

	l, err := backend.NewLocal(m.cfg.LocalPath)
	if err != nil {
		berr := &BackendError{Op: OpConnect, Cause: err}
		m.log.Error().Err(berr).Str("path", m.cfg.LocalPath).
			Msg("local store unusable, translation memory disabled")
		m.mode = ModeDisabled
		return m.mode
	}

	m.be = l
	m.mode = ModeLocal
	m.log.Info().Str("mode", m.mode.String()).Str("path", m.cfg.LocalPath).
		Int("entries", l.Len()).Msg("translation memory using local store")
	return m.mode
}

// Close tears down the active backend: the Redis connection is closed,
// the local store is flushed to disk. Idempotent and safe to call even
// if Connect never ran or never succeeded.
func (m *TranslationMemory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.be == nil {
		return nil
	}

	err := m.be.Close()
	m.be = nil
	if err != nil {
		m.log.Error().Err(err).Msg("error closing translation memory backend")
		return err
	}
	m.log.Info().Msg("translation memory closed")
	return nil
}

// Mode reports the backend mode selected by Connect.
func (m *TranslationMemory) Mode() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mode
}

// Degraded reports whether the memory is running without the remote
// backend (local or disabled). Exposed for health reporting.
func (m *TranslationMemory) Degraded() bool {
	return m.Mode() != ModeRemote
}

// active returns the current backend, or nil when none is available.
func (m *TranslationMemory) active() backend.Backend {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.be
}

// SaveManual writes a translation directly, bypassing any compute path
// (e.g., a user-supplied correction). Existing entries are overwritten.
// Returns false when text or translation is empty, no backend is
// available, or the write fails; backend errors are logged, never
// returned.
func (m *TranslationMemory) SaveManual(ctx context.Context, text, translation, targetLang string) bool {
	if text == "" || translation == "" {
		return false
	}

	be := m.active()
	if be == nil {
		return false
	}

	key := DeriveKey(text, targetLang)
	if err := be.Set(ctx, key, translation); err != nil {
		berr := &BackendError{Op: OpWrite, Key: key, Cause: err}
		m.log.Error().Err(berr).Msg("manual translation write failed")
		return false
	}

	m.log.Info().Str("key", key).Msg("translation memory updated manually")
	return true
}

// GetOrCompute is the primary operation: return the stored translation
// for (text, targetLang) when one exists, otherwise run compute, store
// its result best-effort, and return it.
//
// Backend read errors are logged and treated as misses; write errors are
// logged and never affect the returned value. A compute error is
// returned to the caller unchanged, and nothing is written.
func (m *TranslationMemory) GetOrCompute(ctx context.Context, text, targetLang string, compute ComputeFunc) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	key := DeriveKey(text, targetLang)

	be := m.active()
	if be != nil {
		val, ok, err := be.Get(ctx, key)
		switch {
		case err != nil:
			berr := &BackendError{Op: OpRead, Key: key, Cause: err}
			m.log.Error().Err(berr).Msg("cache read failed, treating as miss")
		case ok && val != "":
			m.log.Debug().Str("key", key).Msg("cache hit")
			return val, nil
		default:
			m.log.Debug().Str("key", key).Msg("cache miss")
		}
	}

	translated, err := compute(ctx)
	if err != nil {
		// No cached alternative exists; the caller gets the failure as-is.
		return "", err
	}

	if translated != "" && be != nil {
		if err := be.Set(ctx, key, translated); err != nil {
			berr := &BackendError{Op: OpWrite, Key: key, Cause: err}
			m.log.Error().Err(berr).Msg("cache write failed, returning computed value anyway")
		}
	}

	return translated, nil
}
