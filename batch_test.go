package tmcache_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtitlestudio/tmcache"
)

func TestLookupBatch(t *testing.T) {
	fb := newFakeBackend()
	fb.data[tmcache.DeriveKey("Hello", "tr")] = "Merhaba"
	fb.data[tmcache.DeriveKey("Thank you", "tr")] = "Teşekkürler"
	tm := newTestMemory(t, fb)

	hits, misses := tm.LookupBatch(context.Background(),
		[]string{"Hello", "Good morning", "Thank you", "Goodbye"}, "tr")

	assert.Equal(t, map[string]string{
		"Hello":     "Merhaba",
		"Thank you": "Teşekkürler",
	}, hits)
	assert.Equal(t, []string{"Good morning", "Goodbye"}, misses)
}

func TestLookupBatch_DeduplicatesAndSkipsBlanks(t *testing.T) {
	fb := newFakeBackend()
	fb.data[tmcache.DeriveKey("Hello", "tr")] = "Merhaba"
	tm := newTestMemory(t, fb)

	hits, misses := tm.LookupBatch(context.Background(),
		[]string{"Hello", "  hello ", "", "   ", "Goodbye", "goodbye"}, "tr")

	// Case variants of a hit each get the shared value.
	require.Len(t, hits, 2)
	assert.Equal(t, "Merhaba", hits["Hello"])
	assert.Equal(t, "Merhaba", hits["  hello "])

	// Misses are reported once per distinct key, first spelling wins.
	assert.Equal(t, []string{"Goodbye"}, misses)

	// One backend read per distinct key.
	assert.Equal(t, 2, fb.getCalls)
}

func TestLookupBatch_ReadErrorsCountAsMisses(t *testing.T) {
	fb := newFakeBackend()
	fb.data[tmcache.DeriveKey("Hello", "tr")] = "Merhaba"
	fb.readErr = errors.New("connection reset")
	tm := newTestMemory(t, fb)

	hits, misses := tm.LookupBatch(context.Background(), []string{"Hello"}, "tr")
	assert.Empty(t, hits)
	assert.Equal(t, []string{"Hello"}, misses)
}

func TestLookupBatch_NoBackend(t *testing.T) {
	// Unusable path: Connect ends up disabled.
	tm := tmcache.New(tmcache.Config{LocalPath: t.TempDir()}, tmcache.WithLogger(zerolog.Nop()))
	tm.Connect(context.Background())
	require.Equal(t, tmcache.ModeDisabled, tm.Mode())

	hits, misses := tm.LookupBatch(context.Background(), []string{"Hello", "Goodbye"}, "tr")
	assert.Empty(t, hits)
	assert.Equal(t, []string{"Hello", "Goodbye"}, misses)
}
