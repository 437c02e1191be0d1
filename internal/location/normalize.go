package location

import (
	"math"
	"strconv"
	"strings"

	"astro-atlas/internal/providers/nominatim"
	"astro-atlas/internal/timezone"
	"astro-atlas/internal/types"
)

// localityExtractors pick the locality label from a Nominatim place, most
// specific field first. The first extractor yielding a non-empty value wins.
var localityExtractors = []func(nominatim.Place) string{
	func(p nominatim.Place) string { return p.Address.City },
	func(p nominatim.Place) string { return p.Address.Town },
	func(p nominatim.Place) string { return p.Address.Village },
	func(p nominatim.Place) string { return p.Address.Hamlet },
	func(p nominatim.Place) string { return firstSegment(p.DisplayName) },
}

func extractLocality(p nominatim.Place) string {
	for _, extract := range localityExtractors {
		if v := strings.TrimSpace(extract(p)); v != "" {
			return v
		}
	}
	return ""
}

func firstSegment(displayName string) string {
	segment, _, _ := strings.Cut(displayName, ",")
	return strings.TrimSpace(segment)
}

// candidateFromPlace converts one raw search result into a candidate.
// It reports false when the record is malformed (unparseable or non-finite
// coordinates), in which case the record is dropped rather than propagated
// as an error. DisplayName is left empty: the label is synthesized once,
// after deduplication, so it reflects the merged identity.
func candidateFromPlace(p nominatim.Place) (types.LocationCandidate, bool) {
	lat, lon, ok := parseCoordinates(p.Lat, p.Lon)
	if !ok {
		return types.LocationCandidate{}, false
	}

	locality := extractLocality(p)

	state := strings.TrimSpace(p.Address.State)
	if state == "" {
		state = strings.TrimSpace(p.Address.StateDistrict)
	}

	return types.LocationCandidate{
		Name:      locality,
		Latitude:  lat,
		Longitude: lon,
		City:      locality,
		State:     state,
		Country:   strings.TrimSpace(p.Address.Country),
		Timezone:  timezone.Estimate(lat, lon),
		Source:    types.SourceExternal,
	}, true
}

func parseCoordinates(latStr, lonStr string) (lat, lon float64, ok bool) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return 0, 0, false
	}
	if !validCoordinates(lat, lon) {
		return 0, 0, false
	}
	return lat, lon, true
}

func validCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
