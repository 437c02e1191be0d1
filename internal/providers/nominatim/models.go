package nominatim

// Address carries the heterogeneous address detail Nominatim attaches when
// addressdetails=1 is requested. Which locality field is populated depends on
// the place type, so consumers pick the most specific non-empty one.
type Address struct {
	City          string `json:"city"`
	Town          string `json:"town"`
	Village       string `json:"village"`
	Hamlet        string `json:"hamlet"`
	Suburb        string `json:"suburb"`
	County        string `json:"county"`
	StateDistrict string `json:"state_district"`
	State         string `json:"state"`
	Country       string `json:"country"`
	CountryCode   string `json:"country_code"`
}

// Place is one result from the search endpoint. Nominatim returns coordinates
// as strings.
type Place struct {
	PlaceID     int64   `json:"place_id"`
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	Class       string  `json:"class"`
	Type        string  `json:"type"`
	Importance  float64 `json:"importance"`
	DisplayName string  `json:"display_name"`
	Address     Address `json:"address"`
}

// ReverseAPIResponse is the payload of the reverse endpoint: a single place,
// or an error message when nothing is found at the coordinates.
type ReverseAPIResponse struct {
	PlaceID     int64   `json:"place_id"`
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	DisplayName string  `json:"display_name"`
	Address     Address `json:"address"`
	Error       string  `json:"error"`
}
