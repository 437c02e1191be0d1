package location

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"astro-atlas/internal/cache"
	"astro-atlas/internal/config"
	"astro-atlas/internal/gazetteer"
	"astro-atlas/internal/metrics"
	"astro-atlas/internal/providers/nominatim"
	"astro-atlas/internal/timezone"
	"astro-atlas/internal/types"
)

// Queries shorter than this never reach the providers.
const minQueryLength = 2

var (
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
)

// Service resolves free-text place names and coordinates into location
// candidates suitable for astronomical calculation.
type Service interface {
	// SearchLocations returns a deduplicated, ranked, size-limited candidate
	// list. It never fails: provider outages degrade to fewer suggestions.
	SearchLocations(query string, limit int) []types.LocationCandidate

	// GetLocationDetails reverse-resolves coordinates into one best-effort
	// candidate. The only possible errors are out-of-range coordinates.
	GetLocationDetails(latitude, longitude float64) (types.LocationCandidate, error)
}

// LocalIndex is the curated gazetteer lookup.
type LocalIndex interface {
	Search(query string, limit int) []types.LocationCandidate
}

// GeocodeProvider is the live external geocoder.
type GeocodeProvider interface {
	Search(query string, limit int) ([]nominatim.Place, error)
	Reverse(latitude, longitude float64) (*nominatim.ReverseAPIResponse, error)
}

// locationService implements the Service interface.
type locationService struct {
	gazetteer LocalIndex
	geocoder  GeocodeProvider
	results   *cache.Results
	logger    *slog.Logger
}

// NewService creates a location service with the default gazetteer, a live
// Nominatim client, and an optional result cache built from configuration.
func NewService(cfg *config.Config, logger *slog.Logger) Service {
	var results *cache.Results
	if cfg.Cache.Enabled {
		results = cache.NewResults(cfg.Cache.MaxEntries, cfg.CacheTTL(), logger)
	}

	return &locationService{
		gazetteer: gazetteer.New(),
		geocoder:  nominatim.NewClientWithBaseURL(cfg.Geocoder.BaseURL, cfg.GeocoderTimeout(), logger),
		results:   results,
		logger:    logger.With("component", "location-service"),
	}
}

// NewServiceWithProviders creates a location service with custom providers.
// This is useful for testing with mock providers.
func NewServiceWithProviders(
	localIndex LocalIndex,
	geocoder GeocodeProvider,
	results *cache.Results,
	logger *slog.Logger,
) Service {
	return &locationService{
		gazetteer: localIndex,
		geocoder:  geocoder,
		results:   results,
		logger:    logger.With("component", "location-service"),
	}
}

// SearchLocations queries the gazetteer and the external geocoder in
// parallel, merges the branches, and reconciles near-duplicates.
func (s *locationService) SearchLocations(query string, limit int) []types.LocationCandidate {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minQueryLength {
		return []types.LocationCandidate{}
	}
	if limit <= 0 {
		limit = 10
	}

	key := cache.Key(query, limit)
	if cached, found := s.results.Get(key); found {
		metrics.CacheHitsTotal.Inc()
		metrics.SearchesTotal.WithLabelValues("cached").Inc()
		return cached
	}
	metrics.CacheMissesTotal.Inc()

	var (
		wg       sync.WaitGroup
		local    []types.LocationCandidate
		external []types.LocationCandidate
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		local = s.gazetteer.Search(query, limit)
	}()

	go func() {
		defer wg.Done()
		external = s.searchExternal(query, limit)
	}()

	wg.Wait()

	metrics.CandidatesTotal.WithLabelValues(string(types.SourceLocal)).Add(float64(len(local)))
	metrics.CandidatesTotal.WithLabelValues(string(types.SourceExternal)).Add(float64(len(external)))

	merged := dedupeAndRank(append(local, external...), limit)

	s.logger.Debug("search completed",
		"query", query,
		"local_count", len(local),
		"external_count", len(external),
		"merged_count", len(merged),
	)

	s.results.Set(key, merged)
	metrics.SearchesTotal.WithLabelValues("resolved").Inc()

	return merged
}

// searchExternal queries the live geocoder and normalizes its results.
// Any failure is recovered as zero external results: degraded search is a
// normal outcome, never a caller-visible error.
func (s *locationService) searchExternal(query string, limit int) []types.LocationCandidate {
	places, err := s.geocoder.Search(query, limit)
	if err != nil {
		s.logger.Warn("external geocoder unavailable, continuing with local results",
			"query", query,
			"error", err,
		)
		metrics.GeocoderErrorsTotal.WithLabelValues("search").Inc()
		return nil
	}

	candidates := make([]types.LocationCandidate, 0, len(places))
	for _, p := range places {
		c, ok := candidateFromPlace(p)
		if !ok {
			s.logger.Debug("dropping malformed place", "display_name", p.DisplayName)
			continue
		}
		candidates = append(candidates, c)
	}
	return candidates
}

// GetLocationDetails reverse-resolves coordinates. It always produces a
// well-formed candidate: when the provider is unreachable the fallback
// carries the formatted coordinates as its display name.
func (s *locationService) GetLocationDetails(latitude, longitude float64) (types.LocationCandidate, error) {
	if latitude < -90 || latitude > 90 {
		return types.LocationCandidate{}, fmt.Errorf("%w: got %v", ErrInvalidLatitude, latitude)
	}
	if longitude < -180 || longitude > 180 {
		return types.LocationCandidate{}, fmt.Errorf("%w: got %v", ErrInvalidLongitude, longitude)
	}

	resp, err := s.geocoder.Reverse(latitude, longitude)
	if err != nil {
		s.logger.Warn("reverse geocoding unavailable, returning coordinate fallback",
			"lat", latitude,
			"lon", longitude,
			"error", err,
		)
		metrics.GeocoderErrorsTotal.WithLabelValues("reverse").Inc()
		return fallbackCandidate(latitude, longitude), nil
	}

	return candidateFromReverse(resp, latitude, longitude), nil
}

// candidateFromReverse maps a reverse-geocoding response. Unlike search
// results, the provider's full formatted address is kept verbatim as the
// display name: a single candidate has nothing to deduplicate against.
func candidateFromReverse(resp *nominatim.ReverseAPIResponse, latitude, longitude float64) types.LocationCandidate {
	lat, lon := latitude, longitude
	if pLat, err := strconv.ParseFloat(resp.Lat, 64); err == nil {
		if pLon, err := strconv.ParseFloat(resp.Lon, 64); err == nil && validCoordinates(pLat, pLon) {
			lat, lon = pLat, pLon
		}
	}

	locality := extractLocality(nominatim.Place{DisplayName: resp.DisplayName, Address: resp.Address})

	state := strings.TrimSpace(resp.Address.State)
	if state == "" {
		state = strings.TrimSpace(resp.Address.StateDistrict)
	}

	displayName := resp.DisplayName
	if displayName == "" {
		displayName = formatCoordinates(lat, lon)
	}

	return types.LocationCandidate{
		Name:        locality,
		DisplayName: displayName,
		Latitude:    lat,
		Longitude:   lon,
		City:        locality,
		State:       state,
		Country:     strings.TrimSpace(resp.Address.Country),
		Timezone:    timezone.Estimate(lat, lon),
		Source:      types.SourceExternal,
	}
}

func fallbackCandidate(latitude, longitude float64) types.LocationCandidate {
	coords := formatCoordinates(latitude, longitude)
	return types.LocationCandidate{
		Name:        coords,
		DisplayName: coords,
		Latitude:    latitude,
		Longitude:   longitude,
		Timezone:    timezone.Estimate(latitude, longitude),
		Source:      types.SourceLocal,
	}
}

func formatCoordinates(latitude, longitude float64) string {
	return fmt.Sprintf("%.4f, %.4f", latitude, longitude)
}
