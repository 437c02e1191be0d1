package cache

import (
	"log/slog"
	"testing"
	"time"

	"astro-atlas/internal/types"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		limit    int
		expected string
	}{
		{
			name:     "lowercased and trimmed",
			query:    "  Mumbai ",
			limit:    5,
			expected: "mumbai|5",
		},
		{
			name:     "limit distinguishes entries",
			query:    "mumbai",
			limit:    10,
			expected: "mumbai|10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.query, tt.limit); got != tt.expected {
				t.Errorf("Key(%q, %d) = %q, want %q", tt.query, tt.limit, got, tt.expected)
			}
		})
	}
}

func TestResults_GetSet(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	r := NewResults(100, time.Minute, logger)

	key := Key("mumbai", 5)

	if _, found := r.Get(key); found {
		t.Fatal("expected miss on empty cache")
	}

	want := []types.LocationCandidate{{Name: "Mumbai", Country: "India", Timezone: "Asia/Kolkata"}}
	r.Set(key, want)

	got, found := r.Get(key)
	if !found {
		t.Fatal("expected hit after Set")
	}
	if len(got) != 1 || got[0].Name != "Mumbai" {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestResults_TTLExpiry(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	r := NewResults(100, 30*time.Millisecond, logger)

	key := Key("pune", 5)
	r.Set(key, []types.LocationCandidate{{Name: "Pune", Country: "India"}})

	if _, found := r.Get(key); !found {
		t.Fatal("expected hit before TTL elapsed")
	}

	time.Sleep(60 * time.Millisecond)

	if _, found := r.Get(key); found {
		t.Error("entry still served after TTL elapsed")
	}
}

func TestResults_GetReturnsCopy(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	r := NewResults(100, time.Minute, logger)

	key := Key("agra", 5)
	r.Set(key, []types.LocationCandidate{{Name: "Agra", Country: "India"}})

	first, found := r.Get(key)
	if !found {
		t.Fatal("expected hit")
	}
	first[0].Name = "mutated"

	second, found := r.Get(key)
	if !found {
		t.Fatal("expected hit")
	}
	if second[0].Name != "Agra" {
		t.Errorf("cached entry corrupted by caller mutation: Name = %q", second[0].Name)
	}
}

func TestResults_NilSafe(t *testing.T) {
	// A nil cache disables caching without null-checks at call sites.
	var r *Results

	if _, found := r.Get("anything"); found {
		t.Error("nil cache must always miss")
	}
	r.Set("anything", nil) // must not panic
}
