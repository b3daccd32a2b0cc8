package tmcache

import (
	"context"
	"strings"
	"sync"
)

// LookupBatch probes the cache for many lines in parallel and reports
// which are already translated. It never invokes a provider; callers use
// the returned misses to decide what still needs computing.
//
// hits is keyed by the original spelling of each input line (case
// variants of the same line share one stored value). misses contains one
// representative line per distinct derived key, in first-seen order.
// Empty and whitespace-only lines are skipped. Read errors count as
// misses, consistent with GetOrCompute.
func (m *TranslationMemory) LookupBatch(ctx context.Context, texts []string, targetLang string) (hits map[string]string, misses []string) {
	hits = make(map[string]string)

	// Deduplicate by derived key, keeping the first spelling seen.
	unique := make(map[string]string, len(texts))
	order := make([]string, 0, len(texts))
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		key := DeriveKey(text, targetLang)
		if _, seen := unique[key]; !seen {
			unique[key] = text
			order = append(order, key)
		}
	}

	be := m.active()
	if be == nil || len(unique) == 0 {
		for _, key := range order {
			misses = append(misses, unique[key])
		}
		return hits, misses
	}

	type lookupResult struct {
		key   string
		value string
		found bool
	}

	results := make(chan lookupResult, len(unique))
	var wg sync.WaitGroup

	for key := range unique {
		wg.Add(1)
		go func(k string) {
			defer wg.Done()
			val, ok, err := be.Get(ctx, k)
			if err != nil {
				berr := &BackendError{Op: OpRead, Key: k, Cause: err}
				m.log.Error().Err(berr).Msg("batch cache read failed, treating as miss")
				results <- lookupResult{key: k}
				return
			}
			results <- lookupResult{key: k, value: val, found: ok && val != ""}
		}(key)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	found := make(map[string]string, len(unique))
	for r := range results {
		if r.found {
			found[r.key] = r.value
		}
	}

	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		if val, ok := found[DeriveKey(text, targetLang)]; ok {
			hits[text] = val
		}
	}
	for _, key := range order {
		if _, ok := found[key]; !ok {
			misses = append(misses, unique[key])
		}
	}

	return hits, misses
}
