package model

// SearchBias optionally biases the external text search towards a circle
// around the caller's position.
type SearchBias struct {
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	RadiusMeters float64 `json:"radius_meters"`
}

// SearchQuery is one search invocation as received from the client.
type SearchQuery struct {
	Text  string      `json:"q"`
	Mode  RankMode    `json:"filter"`
	Types []string    `json:"types"`
	Bias  *SearchBias `json:"bias,omitempty"`
}

// SearchResult is the settled outcome of a search: the ordered records,
// the facet choices derived from the external set, and a single generic
// error string when one of the fetches failed. Per-source failure detail
// is never exposed.
type SearchResult struct {
	Results []PlaceRecord `json:"results"`
	Facets  []TypeFacet   `json:"facets"`
	Error   string        `json:"error,omitempty"`
}
