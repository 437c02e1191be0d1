package location

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"astro-atlas/internal/types"
)

// normalizePart folds a signature component: diacritics are stripped so that
// "São Paulo" and "Sao Paulo" produce the same signature, case is lowered and
// internal whitespace collapsed. The transformer is built per call; a shared
// transform.Chain is not safe for concurrent use.
func normalizePart(s string) string {
	stripDiacritics := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripDiacritics, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// signatureKey is the semantic identity of a candidate: normalized name,
// state and country. Two candidates with the same signature likely refer to
// the same place, unless their coordinates say otherwise.
func signatureKey(c types.LocationCandidate) string {
	return normalizePart(c.Name) + "|" + normalizePart(c.State) + "|" + normalizePart(c.Country)
}

// coordinateKey rounds to 3 decimal places (~100 m), so the same place
// reported with slightly different precision by two providers still collides.
func coordinateKey(c types.LocationCandidate) string {
	return fmt.Sprintf("%.3f,%.3f", c.Latitude, c.Longitude)
}

func sourceRank(s types.Source) int {
	if s == types.SourceExternal {
		return 1
	}
	return 0
}

// dedupeAndRank collapses candidates that share both signature and rounded
// coordinates, keeping the higher-priority source (external over local, first
// seen on ties). Candidates differing in either dimension both survive: two
// towns with the same name in different states are distinct places. Surviving
// candidates get a freshly synthesized display name and a deterministic
// ordering, then the list is truncated to limit.
//
// The function never fails; malformed candidates are dropped before bucketing.
func dedupeAndRank(candidates []types.LocationCandidate, limit int) []types.LocationCandidate {
	type bucketRef struct {
		index int
		rank  int
	}

	buckets := make(map[string]bucketRef)
	kept := make([]types.LocationCandidate, 0, len(candidates))

	for _, c := range candidates {
		if !validCoordinates(c.Latitude, c.Longitude) {
			continue
		}

		key := signatureKey(c) + "#" + coordinateKey(c)
		rank := sourceRank(c.Source)

		ref, seen := buckets[key]
		if !seen {
			buckets[key] = bucketRef{index: len(kept), rank: rank}
			kept = append(kept, c)
			continue
		}
		if rank > ref.rank {
			kept[ref.index] = c
			buckets[key] = bucketRef{index: ref.index, rank: rank}
		}
	}

	for i := range kept {
		kept[i].DisplayName = synthesizeDisplayName(kept[i])
	}

	// Stable sort keeps first-seen order within equal (rank, name) pairs, so
	// identical inputs always produce identical output.
	sort.SliceStable(kept, func(i, j int) bool {
		ri, rj := sourceRank(kept[i].Source), sourceRank(kept[j].Source)
		if ri != rj {
			return ri > rj
		}
		return kept[i].Name < kept[j].Name
	})

	if limit > 0 && len(kept) > limit {
		kept = kept[:limit]
	}
	return kept
}

// synthesizeDisplayName rebuilds the human-readable label from the merged
// identity. The coordinate suffix keeps same-signature places at different
// coordinates visually distinguishable in a list.
func synthesizeDisplayName(c types.LocationCandidate) string {
	base := c.City
	if base == "" {
		base = c.Name
	}

	segments := []string{base}
	if c.State != "" {
		segments = append(segments, c.State)
	}
	if c.Country != "" {
		segments = append(segments, c.Country)
	}

	return fmt.Sprintf("%s (%.4f, %.4f)", strings.Join(segments, ", "), c.Latitude, c.Longitude)
}
