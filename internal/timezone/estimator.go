package timezone

// Estimate returns a best-effort IANA timezone identifier for the given
// coordinates. It is intentionally coarse: the Indian subcontinent gets a
// precise answer because the curated gazetteer is India-centric, and the rest
// of the world is partitioned into longitude bands with one representative
// zone each. Downstream consumers only need a close-enough identifier for
// relative-time display, not an authoritative boundary.
//
// The function is total: it never fails and always returns a non-empty string.
func Estimate(latitude, longitude float64) string {
	// The subcontinent bounding box dominates the generic bands below.
	if latitude >= 6 && latitude <= 38 && longitude >= 68 && longitude <= 98 {
		return "Asia/Kolkata"
	}

	switch {
	case longitude >= -180 && longitude < -30:
		return "America/New_York"
	case longitude >= -30 && longitude < 40:
		return "Europe/London"
	case longitude >= 40 && longitude < 100:
		return "Asia/Dubai"
	case longitude >= 100 && longitude < 150:
		return "Asia/Shanghai"
	case longitude >= 150 && longitude <= 180:
		return "Pacific/Auckland"
	}

	return "UTC"
}
