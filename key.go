package tmcache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// KeyPrefix is the namespace tag shared by every translation-memory key.
const KeyPrefix = "tm"

// Normalize prepares raw text for key derivation by trimming surrounding
// whitespace and lowercasing. Lowercasing is deliberately lossy: many
// near-duplicate subtitle lines differ only in case, and folding them
// raises the hit rate at the cost of case precision.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(text))
}

// DeriveKey computes the cache key for a (text, target language) pair.
// Format: "tm:{target_lang}:{sha256_hash}" with the language lowercased
// and the hash taken over the normalized text. Deterministic and free of
// side effects, so identical inputs always map to the identical key.
func DeriveKey(text, targetLang string) string {
	hash := sha256.Sum256([]byte(Normalize(text)))
	return KeyPrefix + ":" + strings.ToLower(targetLang) + ":" + hex.EncodeToString(hash[:])
}
