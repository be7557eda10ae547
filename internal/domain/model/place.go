package model

// Provenance identifies which source produced a PlaceRecord.
type Provenance string

const (
	ProvenanceCatalog  Provenance = "catalog"
	ProvenanceExternal Provenance = "external"
)

// RankMode selects the comparator applied to merged search results.
type RankMode string

const (
	RankPopular  RankMode = "Popular"
	RankTrending RankMode = "Trending"
	RankNew      RankMode = "New"
	RankAll      RankMode = "All"
)

// ParseRankMode validates a user-supplied filter label. An empty value
// falls back to RankAll.
func ParseRankMode(s string) (RankMode, bool) {
	switch RankMode(s) {
	case RankPopular, RankTrending, RankNew, RankAll:
		return RankMode(s), true
	case "":
		return RankAll, true
	default:
		return "", false
	}
}

// Fallback display names used when a source document carries no name.
const (
	FallbackNameExternal = "Place Name Unavailable"
	FallbackNameCatalog  = "Unnamed Location"
)

// PlaceRecord is the unified place entity the aggregation engine operates
// on. Instances are built fresh on every search and never mutated after
// normalization.
type PlaceRecord struct {
	ID               string     `json:"id"`
	Provenance       Provenance `json:"provenance"`
	DisplayName      string     `json:"display_name"`
	LocationText     string     `json:"location_text"`
	Rating           float64    `json:"rating"`            // clamped to [0, 5]; 0 means unrated
	PopularityCount  int        `json:"popularity_count"`  // review count (catalog) or rating count (external)
	CategoryTags     []string   `json:"category_tags,omitempty"`
	ImageURL         string     `json:"image_url,omitempty"`
	DetailsText      string     `json:"details_text,omitempty"`
	WebsiteURL       string     `json:"website_url,omitempty"`
	MapsURL          string     `json:"maps_url,omitempty"`
	OpeningHoursText string     `json:"opening_hours_text,omitempty"`
}

// TypeFacet is a distinct category label surfaced as a filter choice.
type TypeFacet struct {
	Original  string `json:"original"`
	Formatted string `json:"formatted"`
}

// ClampRating forces a raw rating into the valid [0, 5] range.
func ClampRating(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}
