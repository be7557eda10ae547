package model

// Place is a raw result document from the external place-search provider
// (Places API "new" text search). Only the fields requested through the
// field mask are ever populated; everything beyond id is optional.
type Place struct {
	ID                  string            `json:"id"`
	DisplayName         *LocalizedText    `json:"displayName,omitempty"`
	FormattedAddress    string            `json:"formattedAddress,omitempty"`
	Rating              float64           `json:"rating,omitempty"`
	UserRatingCount     int               `json:"userRatingCount,omitempty"`
	Types               []string          `json:"types,omitempty"`
	Photos              []PlacePhoto      `json:"photos,omitempty"`
	EditorialSummary    *LocalizedText    `json:"editorialSummary,omitempty"`
	WebsiteURI          string            `json:"websiteUri,omitempty"`
	GoogleMapsURI       string            `json:"googleMapsUri,omitempty"`
	RegularOpeningHours *PlaceOpeningHours `json:"regularOpeningHours,omitempty"`
}

// LocalizedText mirrors the API's localized string wrapper.
type LocalizedText struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode,omitempty"`
}

// PlacePhoto is a photo resource reference; Name is the resource path used
// to build a media URL.
type PlacePhoto struct {
	Name     string `json:"name"`
	WidthPx  int    `json:"widthPx,omitempty"`
	HeightPx int    `json:"heightPx,omitempty"`
}

// PlaceOpeningHours carries the human-readable weekly schedule.
type PlaceOpeningHours struct {
	WeekdayDescriptions []string `json:"weekdayDescriptions,omitempty"`
}

// DisplayNameText returns the localized name text, or "" when the provider
// omitted the field.
func (p *Place) DisplayNameText() string {
	if p.DisplayName == nil {
		return ""
	}
	return p.DisplayName.Text
}

// SummaryText returns the editorial summary text, or "" when absent.
func (p *Place) SummaryText() string {
	if p.EditorialSummary == nil {
		return ""
	}
	return p.EditorialSummary.Text
}
