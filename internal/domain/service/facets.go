package service

import (
	"sort"
	"strings"

	"github.com/DebuggingNinjas/GeoAssist/internal/domain/model"
)

// ExtractTypeFacets derives the distinct category types present in the
// external result set, paired with a human-readable label for the filter
// UI. Duplicates collapse, output is sorted case-insensitively by the
// formatted label, and repeated calls with the same input produce the same
// sequence.
func ExtractTypeFacets(external []model.Place) []model.TypeFacet {
	seen := make(map[string]struct{})
	facets := make([]model.TypeFacet, 0)

	for i := range external {
		for _, t := range external[i].Types {
			if t == "" {
				continue
			}
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			facets = append(facets, model.TypeFacet{
				Original:  t,
				Formatted: formatTypeLabel(t),
			})
		}
	}

	sort.SliceStable(facets, func(i, j int) bool {
		return strings.ToLower(facets[i].Formatted) < strings.ToLower(facets[j].Formatted)
	})
	return facets
}

// formatTypeLabel turns a provider type like "tourist_attraction" into
// "Tourist Attraction".
func formatTypeLabel(raw string) string {
	segments := strings.Split(raw, "_")
	for i, seg := range segments {
		if seg == "" {
			continue
		}
		segments[i] = strings.ToUpper(seg[:1]) + seg[1:]
	}
	return strings.Join(segments, " ")
}
