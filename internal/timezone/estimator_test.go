package timezone

import "testing"

func TestEstimate(t *testing.T) {
	tests := []struct {
		name     string
		lat      float64
		lon      float64
		expected string
	}{
		{
			name:     "new delhi inside subcontinent box",
			lat:      28.6139,
			lon:      77.2090,
			expected: "Asia/Kolkata",
		},
		{
			name:     "southern tip of india",
			lat:      8.0883,
			lon:      77.5385,
			expected: "Asia/Kolkata",
		},
		{
			name:     "box edge lat 6 lon 68",
			lat:      6,
			lon:      68,
			expected: "Asia/Kolkata",
		},
		{
			name:     "same longitude but north of the box falls to band",
			lat:      55.0,
			lon:      75.0,
			expected: "Asia/Dubai",
		},
		{
			name:     "same longitude but south of the box falls to band",
			lat:      -20.0,
			lon:      75.0,
			expected: "Asia/Dubai",
		},
		{
			name:     "denver",
			lat:      39.7392,
			lon:      -104.9903,
			expected: "America/New_York",
		},
		{
			name:     "western band edge",
			lat:      0,
			lon:      -180,
			expected: "America/New_York",
		},
		{
			name:     "paris",
			lat:      48.8566,
			lon:      2.3522,
			expected: "Europe/London",
		},
		{
			name:     "band boundary -30 belongs to europe band",
			lat:      0,
			lon:      -30,
			expected: "Europe/London",
		},
		{
			name:     "band boundary 40 belongs to central asia band",
			lat:      50,
			lon:      40,
			expected: "Asia/Dubai",
		},
		{
			name:     "tokyo",
			lat:      35.6762,
			lon:      139.6503,
			expected: "Asia/Shanghai",
		},
		{
			name:     "band boundary 100 belongs to east asia band",
			lat:      50,
			lon:      100,
			expected: "Asia/Shanghai",
		},
		{
			name:     "fiji",
			lat:      -17.7134,
			lon:      178.0650,
			expected: "Pacific/Auckland",
		},
		{
			name:     "eastern band edge 180 inclusive",
			lat:      0,
			lon:      180,
			expected: "Pacific/Auckland",
		},
		{
			name:     "longitude out of range falls back to UTC",
			lat:      0,
			lon:      181,
			expected: "UTC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Estimate(tt.lat, tt.lon)
			if result != tt.expected {
				t.Errorf("Estimate(%v, %v) = %q, want %q", tt.lat, tt.lon, result, tt.expected)
			}
		})
	}
}

func TestEstimateNeverEmpty(t *testing.T) {
	// Sweep the globe on a coarse grid; every point must get a zone.
	for lat := -90.0; lat <= 90; lat += 15 {
		for lon := -180.0; lon <= 180; lon += 15 {
			if tz := Estimate(lat, lon); tz == "" {
				t.Fatalf("Estimate(%v, %v) returned empty timezone", lat, lon)
			}
		}
	}
}
