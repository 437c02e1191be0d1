package types

// Source identifies which provider produced a location candidate.
type Source string

const (
	// SourceLocal marks candidates from the curated in-memory gazetteer.
	SourceLocal Source = "local"
	// SourceExternal marks candidates from the live geocoding provider.
	SourceExternal Source = "external"
)

// LocationCandidate is one resolved location suggestion. Candidates are created
// fresh on every query and never mutated after creation; absent address parts
// are empty strings, never omitted fields.
type LocationCandidate struct {
	Name        string  `json:"name" example:"Mumbai"`
	DisplayName string  `json:"displayName" example:"Mumbai, Maharashtra, India (19.0760, 72.8777)"`
	Latitude    float64 `json:"latitude" example:"19.076"`
	Longitude   float64 `json:"longitude" example:"72.8777"`
	City        string  `json:"city" example:"Mumbai"`
	State       string  `json:"state" example:"Maharashtra"`
	Country     string  `json:"country" example:"India"`
	Timezone    string  `json:"timezone" example:"Asia/Kolkata"`
	Source      Source  `json:"source" example:"external"`
}
