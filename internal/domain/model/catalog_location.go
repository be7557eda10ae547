package model

import (
	"fmt"
	"strings"
	"time"
)

// CatalogLocation is a curated place document stored in the "locations"
// Firestore collection and maintained through the admin screens.
type CatalogLocation struct {
	ID           string    `json:"id" firestore:"-"`
	Name         string    `json:"name" firestore:"name"`
	City         string    `json:"city" firestore:"city"`
	Province     string    `json:"province" firestore:"province"`
	Country      string    `json:"country" firestore:"country"`
	Address      string    `json:"address" firestore:"address"`
	Description  string    `json:"description" firestore:"description"`
	Rating       float64   `json:"rating" firestore:"rating"`
	Tags         []string  `json:"tags" firestore:"tags"`
	Reviews      []Review  `json:"reviews" firestore:"reviews"`
	ImageURL     string    `json:"image_url" firestore:"imageUrl"`
	WebsiteURL   string    `json:"website_url" firestore:"websiteUrl"`
	MapsURL      string    `json:"maps_url" firestore:"mapsUrl"`
	OpeningHours string    `json:"opening_hours" firestore:"openingHours"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Review is a visitor review attached to a catalog document. The number of
// reviews doubles as the document's popularity signal.
type Review struct {
	Author  string  `json:"author" firestore:"author"`
	Comment string  `json:"comment" firestore:"comment"`
	Rating  float64 `json:"rating" firestore:"rating"`
}

// Validate checks the document before any write to the catalog store.
func (l *CatalogLocation) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if l.Rating < 0 || l.Rating > 5 {
		return fmt.Errorf("rating %.2f is out of range [0, 5]", l.Rating)
	}
	return nil
}

// LocationText builds the display/search address line from the document's
// region fields, skipping empty segments.
func (l *CatalogLocation) LocationText() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{l.Address, l.City, l.Province, l.Country} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// MatchesQuery reports whether the document matches a free-text search via
// case-insensitive substring over name, city, province, country and address.
// An empty query matches everything.
func (l *CatalogLocation) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, field := range []string{l.Name, l.City, l.Province, l.Country, l.Address} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
