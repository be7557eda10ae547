package service

import (
	"sort"
	"strings"

	"github.com/DebuggingNinjas/GeoAssist/internal/domain/model"
)

// Aggregate merges the catalog and external result sets into one ordered
// sequence of PlaceRecords.
//
// The pipeline is deterministic and side-effect free: normalize both raw
// shapes, concatenate catalog results ahead of external results, drop
// records that miss the active type filter, then stable-sort with the
// comparator selected by mode. With RankAll the merge order is the final
// order. Both inputs must be non-nil slices; a failed fetch is represented
// upstream by an empty slice, never by nil.
func Aggregate(catalog []model.CatalogLocation, external []model.Place, mode model.RankMode, selectedTypes []string) []model.PlaceRecord {
	records := make([]model.PlaceRecord, 0, len(catalog)+len(external))

	for i := range catalog {
		records = append(records, normalizeCatalog(&catalog[i]))
	}
	for i := range external {
		records = append(records, normalizeExternal(&external[i]))
	}

	if len(selectedTypes) > 0 {
		records = filterByTypes(records, selectedTypes)
	}

	rank(records, mode)
	return records
}

// normalizeCatalog maps a catalog document onto the unified record shape.
// Popularity is the document's review count.
func normalizeCatalog(loc *model.CatalogLocation) model.PlaceRecord {
	name := strings.TrimSpace(loc.Name)
	if name == "" {
		name = model.FallbackNameCatalog
	}

	return model.PlaceRecord{
		ID:               loc.ID,
		Provenance:       model.ProvenanceCatalog,
		DisplayName:      name,
		LocationText:     loc.LocationText(),
		Rating:           model.ClampRating(loc.Rating),
		PopularityCount:  len(loc.Reviews),
		CategoryTags:     loc.Tags,
		ImageURL:         loc.ImageURL,
		DetailsText:      loc.Description,
		WebsiteURL:       loc.WebsiteURL,
		MapsURL:          loc.MapsURL,
		OpeningHoursText: loc.OpeningHours,
	}
}

// normalizeExternal maps a provider result onto the unified record shape.
// Popularity is the provider's user rating count.
func normalizeExternal(place *model.Place) model.PlaceRecord {
	name := strings.TrimSpace(place.DisplayNameText())
	if name == "" {
		name = model.FallbackNameExternal
	}

	var imageURL string
	if len(place.Photos) > 0 {
		imageURL = place.Photos[0].Name
	}

	var hours string
	if place.RegularOpeningHours != nil {
		hours = strings.Join(place.RegularOpeningHours.WeekdayDescriptions, "\n")
	}

	popularity := place.UserRatingCount
	if popularity < 0 {
		popularity = 0
	}

	return model.PlaceRecord{
		ID:               place.ID,
		Provenance:       model.ProvenanceExternal,
		DisplayName:      name,
		LocationText:     place.FormattedAddress,
		Rating:           model.ClampRating(place.Rating),
		PopularityCount:  popularity,
		CategoryTags:     place.Types,
		ImageURL:         imageURL,
		DetailsText:      place.SummaryText(),
		WebsiteURL:       place.WebsiteURI,
		MapsURL:          place.GoogleMapsURI,
		OpeningHoursText: hours,
	}
}

// filterByTypes keeps records whose tags intersect the selected set.
// Records without tags never survive an active filter.
func filterByTypes(records []model.PlaceRecord, selectedTypes []string) []model.PlaceRecord {
	selected := make(map[string]struct{}, len(selectedTypes))
	for _, t := range selectedTypes {
		selected[t] = struct{}{}
	}

	kept := records[:0]
	for _, rec := range records {
		for _, tag := range rec.CategoryTags {
			if _, ok := selected[tag]; ok {
				kept = append(kept, rec)
				break
			}
		}
	}
	return kept
}

// rank orders records in place. Sorts are stable so that records comparing
// equal keep their merge order.
func rank(records []model.PlaceRecord, mode model.RankMode) {
	switch mode {
	case model.RankPopular:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Rating > records[j].Rating
		})
	case model.RankTrending:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].PopularityCount > records[j].PopularityCount
		})
	case model.RankNew:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Provenance == model.ProvenanceCatalog &&
				records[j].Provenance == model.ProvenanceExternal
		})
	default:
		// RankAll keeps the merge order untouched.
	}
}
