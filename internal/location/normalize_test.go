package location

import (
	"testing"

	"astro-atlas/internal/providers/nominatim"
	"astro-atlas/internal/types"
)

func TestExtractLocality(t *testing.T) {
	tests := []struct {
		name     string
		place    nominatim.Place
		expected string
	}{
		{
			name: "city preferred",
			place: nominatim.Place{
				DisplayName: "Mumbai, Maharashtra, India",
				Address:     nominatim.Address{City: "Mumbai", Town: "Ignored"},
			},
			expected: "Mumbai",
		},
		{
			name: "town when city absent",
			place: nominatim.Place{
				Address: nominatim.Address{Town: "Rishikesh"},
			},
			expected: "Rishikesh",
		},
		{
			name: "village after town",
			place: nominatim.Place{
				Address: nominatim.Address{Village: "Malana"},
			},
			expected: "Malana",
		},
		{
			name: "hamlet after village",
			place: nominatim.Place{
				Address: nominatim.Address{Hamlet: "Kheerganga"},
			},
			expected: "Kheerganga",
		},
		{
			name: "display name first segment as last resort",
			place: nominatim.Place{
				DisplayName: "Connaught Place, New Delhi, Delhi, India",
			},
			expected: "Connaught Place",
		},
		{
			name:     "nothing available",
			place:    nominatim.Place{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractLocality(tt.place); got != tt.expected {
				t.Errorf("extractLocality() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCandidateFromPlace(t *testing.T) {
	tests := []struct {
		name     string
		place    nominatim.Place
		wantOK   bool
		validate func(*testing.T, types.LocationCandidate)
	}{
		{
			name: "valid place",
			place: nominatim.Place{
				Lat:         "19.0760",
				Lon:         "72.8777",
				DisplayName: "Mumbai, Maharashtra, India",
				Address:     nominatim.Address{City: "Mumbai", State: "Maharashtra", Country: "India"},
			},
			wantOK: true,
			validate: func(t *testing.T, c types.LocationCandidate) {
				if c.Name != "Mumbai" || c.City != "Mumbai" {
					t.Errorf("locality = %q/%q, want Mumbai", c.Name, c.City)
				}
				if c.Source != types.SourceExternal {
					t.Errorf("Source = %q, want external", c.Source)
				}
				if c.Timezone != "Asia/Kolkata" {
					t.Errorf("Timezone = %q, want Asia/Kolkata (estimated)", c.Timezone)
				}
				if c.DisplayName != "" {
					t.Errorf("DisplayName synthesized too early: %q", c.DisplayName)
				}
			},
		},
		{
			name: "state district fills absent state",
			place: nominatim.Place{
				Lat:     "28.6",
				Lon:     "77.2",
				Address: nominatim.Address{City: "Delhi", StateDistrict: "Central Delhi", Country: "India"},
			},
			wantOK: true,
			validate: func(t *testing.T, c types.LocationCandidate) {
				if c.State != "Central Delhi" {
					t.Errorf("State = %q, want %q", c.State, "Central Delhi")
				}
			},
		},
		{
			name: "absent address parts become empty strings",
			place: nominatim.Place{
				Lat:         "51.5",
				Lon:         "-0.12",
				DisplayName: "Somewhere",
			},
			wantOK: true,
			validate: func(t *testing.T, c types.LocationCandidate) {
				if c.State != "" || c.Country != "" {
					t.Errorf("expected empty state/country, got %q/%q", c.State, c.Country)
				}
			},
		},
		{
			name:   "unparseable latitude dropped",
			place:  nominatim.Place{Lat: "not-a-number", Lon: "72.8777"},
			wantOK: false,
		},
		{
			name:   "unparseable longitude dropped",
			place:  nominatim.Place{Lat: "19.0760", Lon: ""},
			wantOK: false,
		},
		{
			name:   "NaN dropped",
			place:  nominatim.Place{Lat: "NaN", Lon: "72.8777"},
			wantOK: false,
		},
		{
			name:   "out of range dropped",
			place:  nominatim.Place{Lat: "95.0", Lon: "72.8777"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := candidateFromPlace(tt.place)
			if ok != tt.wantOK {
				t.Fatalf("candidateFromPlace() ok = %v, want %v", ok, tt.wantOK)
			}
			if tt.validate != nil {
				tt.validate(t, got)
			}
		})
	}
}
