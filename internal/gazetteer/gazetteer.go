package gazetteer

import (
	"strings"

	"astro-atlas/internal/types"
)

// Entry is one curated locality. Every entry carries a pre-verified IANA
// timezone, so the heuristic estimator is never consulted for local matches.
type Entry struct {
	Name      string
	State     string
	Country   string
	Latitude  float64
	Longitude float64
	Timezone  string
}

// Gazetteer is an immutable in-memory table of known localities. It is built
// once at startup and is safe for unsynchronized concurrent reads.
type Gazetteer struct {
	entries []Entry
}

// New returns a gazetteer backed by the curated default table.
func New() *Gazetteer {
	return &Gazetteer{entries: defaultEntries}
}

// NewWithEntries returns a gazetteer over a custom table. Useful for tests.
func NewWithEntries(entries []Entry) *Gazetteer {
	return &Gazetteer{entries: entries}
}

// Search returns up to limit candidates whose name contains the query,
// case-insensitively, in table insertion order. It never fails and performs
// no I/O.
func (g *Gazetteer) Search(query string, limit int) []types.LocationCandidate {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}

	var results []types.LocationCandidate
	for _, e := range g.entries {
		if !strings.Contains(strings.ToLower(e.Name), q) {
			continue
		}
		results = append(results, candidateFromEntry(e))
		if len(results) >= limit {
			break
		}
	}
	return results
}

func candidateFromEntry(e Entry) types.LocationCandidate {
	return types.LocationCandidate{
		Name:      e.Name,
		Latitude:  e.Latitude,
		Longitude: e.Longitude,
		City:      e.Name,
		State:     e.State,
		Country:   e.Country,
		Timezone:  e.Timezone,
		Source:    types.SourceLocal,
	}
}
