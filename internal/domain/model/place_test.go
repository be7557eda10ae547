package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRankMode(t *testing.T) {
	for _, valid := range []string{"Popular", "Trending", "New", "All"} {
		mode, ok := ParseRankMode(valid)
		assert.True(t, ok)
		assert.Equal(t, RankMode(valid), mode)
	}

	mode, ok := ParseRankMode("")
	assert.True(t, ok)
	assert.Equal(t, RankAll, mode)

	_, ok = ParseRankMode("popular")
	assert.False(t, ok)
	_, ok = ParseRankMode("Bestest")
	assert.False(t, ok)
}

func TestClampRating(t *testing.T) {
	assert.Equal(t, 0.0, ClampRating(-3))
	assert.Equal(t, 5.0, ClampRating(9.9))
	assert.Equal(t, 4.5, ClampRating(4.5))
}

func TestCatalogLocation_MatchesQuery(t *testing.T) {
	loc := CatalogLocation{
		Name:     "Old Mill",
		City:     "Toronto",
		Province: "Ontario",
		Country:  "Canada",
		Address:  "21 Old Mill Rd",
	}

	assert.True(t, loc.MatchesQuery(""))
	assert.True(t, loc.MatchesQuery("  "))
	assert.True(t, loc.MatchesQuery("toronto"))
	assert.True(t, loc.MatchesQuery("ONTARIO"))
	assert.True(t, loc.MatchesQuery("mill rd"))
	assert.False(t, loc.MatchesQuery("halifax"))
}

func TestCatalogLocation_LocationText(t *testing.T) {
	loc := CatalogLocation{City: "Toronto", Country: "Canada"}
	assert.Equal(t, "Toronto, Canada", loc.LocationText())

	empty := CatalogLocation{}
	assert.Equal(t, "", empty.LocationText())
}

func TestCatalogLocation_Validate(t *testing.T) {
	assert.Error(t, (&CatalogLocation{Name: " ", Rating: 3}).Validate())
	assert.Error(t, (&CatalogLocation{Name: "X", Rating: 5.1}).Validate())
	assert.Error(t, (&CatalogLocation{Name: "X", Rating: -0.1}).Validate())
	assert.NoError(t, (&CatalogLocation{Name: "X", Rating: 0}).Validate())
	assert.NoError(t, (&CatalogLocation{Name: "X", Rating: 5}).Validate())
}
