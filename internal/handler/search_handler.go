package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DebuggingNinjas/GeoAssist/internal/domain/helper"
	"github.com/DebuggingNinjas/GeoAssist/internal/domain/model"
	"github.com/DebuggingNinjas/GeoAssist/internal/usecase"
)

// SearchHandler serves the merged place search.
type SearchHandler struct {
	searchUseCase usecase.SearchUseCase
}

// NewSearchHandler creates a new SearchHandler instance.
func NewSearchHandler(searchUseCase usecase.SearchUseCase) *SearchHandler {
	return &SearchHandler{
		searchUseCase: searchUseCase,
	}
}

// Search GET /api/search - merged, filtered and ranked place results
func (h *SearchHandler) Search(c *gin.Context) {
	mode, ok := model.ParseRankMode(c.Query("filter"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "filter must be one of: Popular, Trending, New, All",
		})
		return
	}

	query := &model.SearchQuery{
		Text:  c.Query("q"),
		Mode:  mode,
		Types: parseTypes(c.Query("types")),
	}

	bias, err := parseBias(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": err.Error(),
		})
		return
	}
	query.Bias = bias

	result, err := h.searchUseCase.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to run search: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// parseTypes splits the comma-separated types parameter, dropping empty
// segments.
func parseTypes(raw string) []string {
	if raw == "" {
		return nil
	}
	var types []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}
	return types
}

// parseBias reads the optional lat/lng/radius parameters. Supplying only
// one of lat/lng is an error.
func parseBias(c *gin.Context) (*model.SearchBias, error) {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")

	if latStr == "" && lngStr == "" {
		return nil, nil
	}
	if latStr == "" || lngStr == "" {
		return nil, errInvalidBias("lat and lng must be supplied together")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, errInvalidBias("invalid lat value")
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil, errInvalidBias("invalid lng value")
	}

	var radius float64
	if radiusStr := c.Query("radius"); radiusStr != "" {
		radius, err = strconv.ParseFloat(radiusStr, 64)
		if err != nil {
			return nil, errInvalidBias("invalid radius value")
		}
	}

	return helper.NewSearchBias(lat, lng, radius)
}

type errInvalidBias string

func (e errInvalidBias) Error() string { return string(e) }
