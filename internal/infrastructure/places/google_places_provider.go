package places

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/DebuggingNinjas/GeoAssist/internal/domain/helper"
	"github.com/DebuggingNinjas/GeoAssist/internal/domain/model"
)

const (
	searchTextEndpoint = "https://places.googleapis.com/v1/places:searchText"
	mediaBaseURL       = "https://places.googleapis.com/v1"

	// Fields requested from the API. Everything outside the mask comes
	// back empty, so this list has to cover the normalized record shape.
	searchFieldMask = "places.id,places.displayName,places.formattedAddress," +
		"places.rating,places.userRatingCount,places.types,places.photos," +
		"places.editorialSummary,places.websiteUri,places.googleMapsUri," +
		"places.regularOpeningHours"

	maxResultCount = 20
	photoMaxWidth  = 1200
)

// GooglePlacesProvider implements the external place search against the
// Places API (new) text search endpoint.
type GooglePlacesProvider struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// NewGooglePlacesProvider builds a provider with a bounded request timeout.
func NewGooglePlacesProvider(apiKey string) *GooglePlacesProvider {
	return &GooglePlacesProvider{
		apiKey:     apiKey,
		endpoint:   searchTextEndpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchText runs a text-query search and returns the raw place documents.
// Photo resource names are rewritten into fetchable media URLs before the
// results leave this package, so callers never see bare resource paths.
func (g *GooglePlacesProvider) SearchText(ctx context.Context, query string, bias *model.SearchBias) ([]model.Place, error) {
	body, err := json.Marshal(g.buildRequestBody(query, bias))
	if err != nil {
		return nil, fmt.Errorf("failed to encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", g.apiKey)
	req.Header.Set("X-Goog-FieldMask", searchFieldMask)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("place search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("place search returned error status: %s", resp.Status)
	}

	var apiResp searchTextResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to parse place search response: %w", err)
	}

	for i := range apiResp.Places {
		for j := range apiResp.Places[i].Photos {
			apiResp.Places[i].Photos[j].Name = g.photoMediaURL(apiResp.Places[i].Photos[j].Name)
		}
	}

	return apiResp.Places, nil
}

func (g *GooglePlacesProvider) buildRequestBody(query string, bias *model.SearchBias) searchTextRequest {
	req := searchTextRequest{
		TextQuery:      query,
		MaxResultCount: maxResultCount,
	}
	if bias != nil {
		viewport := helper.BiasViewport(bias)
		req.LocationBias = &locationBias{
			Rectangle: rectangle{
				Low:  latLng{Latitude: viewport.Min.Lat(), Longitude: viewport.Min.Lon()},
				High: latLng{Latitude: viewport.Max.Lat(), Longitude: viewport.Max.Lon()},
			},
		}
	}
	return req
}

// photoMediaURL turns a photo resource name ("places/X/photos/Y") into a
// media URL the client can render directly.
func (g *GooglePlacesProvider) photoMediaURL(name string) string {
	params := url.Values{}
	params.Set("key", g.apiKey)
	params.Set("maxWidthPx", fmt.Sprintf("%d", photoMaxWidth))
	return fmt.Sprintf("%s/%s/media?%s", mediaBaseURL, name, params.Encode())
}

// --- request/response shapes of the searchText endpoint ---

type searchTextRequest struct {
	TextQuery      string        `json:"textQuery"`
	MaxResultCount int           `json:"maxResultCount,omitempty"`
	LocationBias   *locationBias `json:"locationBias,omitempty"`
}

type locationBias struct {
	Rectangle rectangle `json:"rectangle"`
}

type rectangle struct {
	Low  latLng `json:"low"`
	High latLng `json:"high"`
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type searchTextResponse struct {
	Places []model.Place `json:"places"`
}
