package places

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DebuggingNinjas/GeoAssist/internal/domain/model"
)

// newTestProvider points the provider at a local test server.
func newTestProvider(t *testing.T, handler http.HandlerFunc) (*GooglePlacesProvider, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	provider := NewGooglePlacesProvider("test-api-key")
	provider.httpClient = server.Client()
	return provider, server
}

func TestGooglePlacesProvider_SearchText(t *testing.T) {
	t.Run("sends the query with key and field mask headers", func(t *testing.T) {
		var gotHeaders http.Header
		var gotBody searchTextRequest

		provider, server := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			gotHeaders = r.Header.Clone()
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_ = json.NewEncoder(w).Encode(searchTextResponse{})
		})
		provider.endpoint = server.URL

		_, err := provider.SearchText(context.Background(), "museums in toronto", nil)
		require.NoError(t, err)

		assert.Equal(t, "test-api-key", gotHeaders.Get("X-Goog-Api-Key"))
		assert.Equal(t, searchFieldMask, gotHeaders.Get("X-Goog-FieldMask"))
		assert.Equal(t, "museums in toronto", gotBody.TextQuery)
		assert.Nil(t, gotBody.LocationBias)
	})

	t.Run("sends a rectangle bias around the center", func(t *testing.T) {
		var gotBody searchTextRequest

		provider, server := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_ = json.NewEncoder(w).Encode(searchTextResponse{})
		})
		provider.endpoint = server.URL

		bias := &model.SearchBias{Lat: 43.64, Lng: -79.39, RadiusMeters: 5000}
		_, err := provider.SearchText(context.Background(), "cafes", bias)
		require.NoError(t, err)

		require.NotNil(t, gotBody.LocationBias)
		rect := gotBody.LocationBias.Rectangle
		assert.Less(t, rect.Low.Latitude, bias.Lat)
		assert.Greater(t, rect.High.Latitude, bias.Lat)
		assert.Less(t, rect.Low.Longitude, bias.Lng)
		assert.Greater(t, rect.High.Longitude, bias.Lng)
	})

	t.Run("rewrites photo resource names into media URLs", func(t *testing.T) {
		provider, server := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(searchTextResponse{Places: []model.Place{{
				ID:     "e1",
				Photos: []model.PlacePhoto{{Name: "places/e1/photos/p1"}},
			}}})
		})
		provider.endpoint = server.URL

		results, err := provider.SearchText(context.Background(), "x", nil)
		require.NoError(t, err)
		require.Len(t, results, 1)
		require.Len(t, results[0].Photos, 1)
		assert.Contains(t, results[0].Photos[0].Name, "/places/e1/photos/p1/media?")
		assert.Contains(t, results[0].Photos[0].Name, "key=test-api-key")
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		provider, server := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		})
		provider.endpoint = server.URL

		_, err := provider.SearchText(context.Background(), "x", nil)
		assert.Error(t, err)
	})

	t.Run("malformed response body is an error", func(t *testing.T) {
		provider, server := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		})
		provider.endpoint = server.URL

		_, err := provider.SearchText(context.Background(), "x", nil)
		assert.Error(t, err)
	})
}
