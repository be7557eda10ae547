package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DebuggingNinjas/GeoAssist/internal/domain/model"
)

func catalogDoc(id, name string, rating float64, tags []string, reviews int) model.CatalogLocation {
	doc := model.CatalogLocation{
		ID:     id,
		Name:   name,
		Rating: rating,
		Tags:   tags,
	}
	for i := 0; i < reviews; i++ {
		doc.Reviews = append(doc.Reviews, model.Review{Author: "visitor", Rating: 4})
	}
	return doc
}

func externalPlace(id, name string, rating float64, ratingCount int, types []string) model.Place {
	p := model.Place{
		ID:              id,
		Rating:          rating,
		UserRatingCount: ratingCount,
		Types:           types,
	}
	if name != "" {
		p.DisplayName = &model.LocalizedText{Text: name}
	}
	return p
}

func ids(records []model.PlaceRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestAggregate_MergeOrder(t *testing.T) {
	catalog := []model.CatalogLocation{
		catalogDoc("c1", "Old Mill", 4.0, nil, 2),
		catalogDoc("c2", "Harbour Front", 3.5, nil, 0),
	}
	external := []model.Place{
		externalPlace("e1", "CN Tower", 4.7, 1200, nil),
		externalPlace("e2", "Royal Ontario Museum", 4.5, 900, nil),
	}

	t.Run("All mode keeps catalog-first merge order", func(t *testing.T) {
		records := Aggregate(catalog, external, model.RankAll, nil)
		assert.Equal(t, []string{"c1", "c2", "e1", "e2"}, ids(records))
	})

	t.Run("output length equals combined input without a type filter", func(t *testing.T) {
		records := Aggregate(catalog, external, model.RankAll, nil)
		assert.Len(t, records, len(catalog)+len(external))
	})

	t.Run("empty inputs produce an empty sequence", func(t *testing.T) {
		records := Aggregate([]model.CatalogLocation{}, []model.Place{}, model.RankAll, nil)
		assert.Empty(t, records)
	})
}

func TestAggregate_Normalization(t *testing.T) {
	t.Run("provenance is tagged per source", func(t *testing.T) {
		records := Aggregate(
			[]model.CatalogLocation{catalogDoc("c1", "Old Mill", 4.0, nil, 0)},
			[]model.Place{externalPlace("e1", "CN Tower", 4.7, 10, nil)},
			model.RankAll, nil,
		)
		require.Len(t, records, 2)
		assert.Equal(t, model.ProvenanceCatalog, records[0].Provenance)
		assert.Equal(t, model.ProvenanceExternal, records[1].Provenance)
	})

	t.Run("missing names fall back to the source marker", func(t *testing.T) {
		records := Aggregate(
			[]model.CatalogLocation{catalogDoc("c1", "  ", 4.0, nil, 0)},
			[]model.Place{externalPlace("e1", "", 4.7, 10, nil)},
			model.RankAll, nil,
		)
		require.Len(t, records, 2)
		assert.Equal(t, model.FallbackNameCatalog, records[0].DisplayName)
		assert.Equal(t, model.FallbackNameExternal, records[1].DisplayName)
	})

	t.Run("out-of-range ratings are clamped, not rejected", func(t *testing.T) {
		records := Aggregate(
			[]model.CatalogLocation{catalogDoc("c1", "Old Mill", -1.0, nil, 0)},
			[]model.Place{externalPlace("e1", "CN Tower", 7.2, 10, nil)},
			model.RankAll, nil,
		)
		require.Len(t, records, 2)
		assert.Equal(t, 0.0, records[0].Rating)
		assert.Equal(t, 5.0, records[1].Rating)
	})

	t.Run("popularity maps review count and rating count onto one field", func(t *testing.T) {
		records := Aggregate(
			[]model.CatalogLocation{catalogDoc("c1", "Old Mill", 4.0, nil, 3)},
			[]model.Place{externalPlace("e1", "CN Tower", 4.7, 1200, nil)},
			model.RankAll, nil,
		)
		require.Len(t, records, 2)
		assert.Equal(t, 3, records[0].PopularityCount)
		assert.Equal(t, 1200, records[1].PopularityCount)
	})
}

func TestAggregate_TypeFilter(t *testing.T) {
	catalog := []model.CatalogLocation{
		catalogDoc("c1", "Old Mill", 4.0, []string{"landmark"}, 0),
	}
	external := []model.Place{
		externalPlace("e1", "Royal Ontario Museum", 4.5, 900, []string{"museum", "indoor"}),
		externalPlace("e2", "CN Tower", 4.7, 1200, []string{"landmark"}),
		externalPlace("e3", "Mystery Spot", 4.0, 5, nil),
	}

	t.Run("keeps records whose tags intersect the selection", func(t *testing.T) {
		records := Aggregate(catalog, external, model.RankAll, []string{"museum"})
		assert.Equal(t, []string{"e1"}, ids(records))
	})

	t.Run("records without tags are dropped under an active filter", func(t *testing.T) {
		records := Aggregate(catalog, external, model.RankAll, []string{"museum", "landmark"})
		for _, rec := range records {
			assert.NotEmpty(t, rec.CategoryTags)
		}
		assert.Equal(t, []string{"c1", "e1", "e2"}, ids(records))
	})

	t.Run("empty selection means no filtering", func(t *testing.T) {
		records := Aggregate(catalog, external, model.RankAll, nil)
		assert.Len(t, records, 4)
	})
}

func TestAggregate_Ranking(t *testing.T) {
	t.Run("Popular sorts by rating descending across provenances", func(t *testing.T) {
		catalog := []model.CatalogLocation{catalogDoc("c1", "Alpha", 4.8, nil, 0)}
		external := []model.Place{externalPlace("e1", "Beta", 4.2, 0, nil)}

		records := Aggregate(catalog, external, model.RankPopular, nil)
		require.Len(t, records, 2)
		assert.Equal(t, "c1", records[0].ID)
		assert.Equal(t, "Alpha", records[0].DisplayName)
		assert.Equal(t, "e1", records[1].ID)
		assert.Equal(t, "Beta", records[1].DisplayName)
	})

	t.Run("Popular is a non-increasing rating sequence with unrated as zero", func(t *testing.T) {
		catalog := []model.CatalogLocation{
			catalogDoc("c1", "Unrated", 0, nil, 0),
			catalogDoc("c2", "Good", 4.1, nil, 0),
		}
		external := []model.Place{
			externalPlace("e1", "Best", 4.9, 10, nil),
			externalPlace("e2", "Nameless", 0, 0, nil),
		}

		records := Aggregate(catalog, external, model.RankPopular, nil)
		for i := 1; i < len(records); i++ {
			assert.GreaterOrEqual(t, records[i-1].Rating, records[i].Rating)
		}
	})

	t.Run("Popular ties keep merge order", func(t *testing.T) {
		external := []model.Place{
			externalPlace("e1", "First", 4.5, 1, nil),
			externalPlace("e2", "Second", 4.5, 2, nil),
		}
		records := Aggregate([]model.CatalogLocation{}, external, model.RankPopular, nil)
		assert.Equal(t, []string{"e1", "e2"}, ids(records))
	})

	t.Run("Trending sorts by popularity count descending", func(t *testing.T) {
		catalog := []model.CatalogLocation{catalogDoc("c1", "Quiet", 5.0, nil, 1)}
		external := []model.Place{
			externalPlace("e1", "Busy", 3.9, 5000, nil),
			externalPlace("e2", "Moderate", 4.2, 40, nil),
		}
		records := Aggregate(catalog, external, model.RankTrending, nil)
		assert.Equal(t, []string{"e1", "e2", "c1"}, ids(records))
	})

	t.Run("New puts catalog records first without reordering groups", func(t *testing.T) {
		catalog := []model.CatalogLocation{
			catalogDoc("c1", "A", 1, nil, 0),
			catalogDoc("c2", "B", 2, nil, 0),
		}
		external := []model.Place{
			externalPlace("e1", "C", 5, 10, nil),
			externalPlace("e2", "D", 4, 20, nil),
		}
		records := Aggregate(catalog, external, model.RankNew, nil)
		assert.Equal(t, []string{"c1", "c2", "e1", "e2"}, ids(records))
	})
}
