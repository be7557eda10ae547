package repository

import (
	"context"

	"github.com/DebuggingNinjas/GeoAssist/internal/domain/model"
)

// PlaceSearchProvider is the external text-query place search endpoint.
// A nil bias means no location preference. Any transport or non-2xx
// failure surfaces as an error; the caller decides the fallback.
type PlaceSearchProvider interface {
	SearchText(ctx context.Context, query string, bias *model.SearchBias) ([]model.Place, error)
}
