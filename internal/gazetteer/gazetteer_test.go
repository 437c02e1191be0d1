package gazetteer

import (
	"testing"

	"astro-atlas/internal/types"
)

func TestGazetteer_Search(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		limit     int
		wantCount int
		validate  func(*testing.T, []types.LocationCandidate)
	}{
		{
			name:      "exact curated locality",
			query:     "Connaught Place",
			limit:     5,
			wantCount: 1,
			validate: func(t *testing.T, got []types.LocationCandidate) {
				c := got[0]
				if c.City != "Connaught Place" {
					t.Errorf("City = %q, want %q", c.City, "Connaught Place")
				}
				if c.Country != "India" {
					t.Errorf("Country = %q, want %q", c.Country, "India")
				}
				if c.Timezone != "Asia/Kolkata" {
					t.Errorf("Timezone = %q, want %q", c.Timezone, "Asia/Kolkata")
				}
				if c.Source != types.SourceLocal {
					t.Errorf("Source = %q, want %q", c.Source, types.SourceLocal)
				}
			},
		},
		{
			name:      "case insensitive match",
			query:     "mUmBaI",
			limit:     5,
			wantCount: 1,
		},
		{
			name:      "substring matches multiple entries",
			query:     "pur",
			limit:     50,
			wantCount: 8, // Kanpur, Jaipur, Nagpur, Jodhpur, Udaipur, Raipur, Puri, Thiruvananthapuram
		},
		{
			name:      "limit truncates",
			query:     "pur",
			limit:     3,
			wantCount: 3,
		},
		{
			name:      "no match",
			query:     "xyzzy",
			limit:     5,
			wantCount: 0,
		},
		{
			name:      "empty query",
			query:     "   ",
			limit:     5,
			wantCount: 0,
		},
		{
			name:      "zero limit",
			query:     "Delhi",
			limit:     0,
			wantCount: 0,
		},
	}

	g := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Search(tt.query, tt.limit)
			if len(got) != tt.wantCount {
				t.Fatalf("Search(%q, %d) returned %d candidates, want %d", tt.query, tt.limit, len(got), tt.wantCount)
			}
			if tt.validate != nil {
				tt.validate(t, got)
			}
		})
	}
}

func TestGazetteer_SearchInsertionOrder(t *testing.T) {
	g := NewWithEntries([]Entry{
		{Name: "Springfield", State: "Illinois", Country: "United States", Latitude: 39.7817, Longitude: -89.6501, Timezone: "America/Chicago"},
		{Name: "Springfield", State: "Massachusetts", Country: "United States", Latitude: 42.1015, Longitude: -72.5898, Timezone: "America/New_York"},
	})

	got := g.Search("springfield", 10)
	if len(got) != 2 {
		t.Fatalf("expected both entries, got %d", len(got))
	}
	if got[0].State != "Illinois" || got[1].State != "Massachusetts" {
		t.Errorf("results not in insertion order: %q, %q", got[0].State, got[1].State)
	}
}

func TestDefaultTableTimezonesVerified(t *testing.T) {
	// Every curated entry must carry a precise timezone and valid coordinates;
	// the heuristic estimator is never consulted for local matches.
	for _, e := range defaultEntries {
		if e.Timezone == "" {
			t.Errorf("entry %q has no timezone", e.Name)
		}
		if e.Latitude < -90 || e.Latitude > 90 {
			t.Errorf("entry %q has invalid latitude %v", e.Name, e.Latitude)
		}
		if e.Longitude < -180 || e.Longitude > 180 {
			t.Errorf("entry %q has invalid longitude %v", e.Name, e.Longitude)
		}
	}
}
