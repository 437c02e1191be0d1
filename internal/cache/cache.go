// Package cache provides a small in-process TTL cache for search results.
// It exists as an explicit, injectable object rather than package-level state
// so callers (and tests) control its lifetime and TTL.
package cache

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/maypok86/otter/v2"

	"astro-atlas/internal/types"
)

type Results struct {
	cache  *otter.Cache[string, []types.LocationCandidate]
	logger *slog.Logger
	ttl    time.Duration
}

// NewResults builds a result cache holding at most maxEntries entries, each
// expiring ttl after being written.
func NewResults(maxEntries int, ttl time.Duration, logger *slog.Logger) *Results {
	c := otter.Must(&otter.Options[string, []types.LocationCandidate]{
		MaximumSize:      maxEntries,
		ExpiryCalculator: otter.ExpiryWriting[string, []types.LocationCandidate](ttl),
	})

	return &Results{
		cache:  c,
		logger: logger.With("component", "result-cache"),
		ttl:    ttl,
	}
}

// Key derives the cache key for a search call. Queries differing only in case
// or surrounding whitespace share an entry.
func Key(query string, limit int) string {
	return fmt.Sprintf("%s|%d", strings.ToLower(strings.TrimSpace(query)), limit)
}

// Get returns a copy of the cached candidate list, so callers can never
// corrupt the stored entry for subsequent hits.
func (r *Results) Get(key string) ([]types.LocationCandidate, bool) {
	if r == nil {
		return nil, false
	}
	candidates, found := r.cache.GetIfPresent(key)
	if !found {
		r.logger.Debug("cache miss", "key", key)
		return nil, false
	}
	return slices.Clone(candidates), true
}

func (r *Results) Set(key string, candidates []types.LocationCandidate) {
	if r == nil {
		return
	}
	r.cache.Set(key, candidates)
	r.logger.Debug("cache set", "key", key, "count", len(candidates), "ttl", r.ttl)
}
