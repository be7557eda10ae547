package helper

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/DebuggingNinjas/GeoAssist/internal/domain/model"
)

const (
	// DefaultBiasRadiusMeters is used when the client supplies a center
	// without a radius.
	DefaultBiasRadiusMeters = 5000.0

	// MaxBiasRadiusMeters is the upper bound the search provider accepts.
	MaxBiasRadiusMeters = 50000.0
)

// NewSearchBias validates raw coordinates and clamps the radius into the
// range the provider supports.
func NewSearchBias(lat, lng, radiusMeters float64) (*model.SearchBias, error) {
	if lat < -90 || lat > 90 {
		return nil, fmt.Errorf("latitude %f is out of range [-90, 90]", lat)
	}
	if lng < -180 || lng > 180 {
		return nil, fmt.Errorf("longitude %f is out of range [-180, 180]", lng)
	}

	if radiusMeters <= 0 {
		radiusMeters = DefaultBiasRadiusMeters
	}
	if radiusMeters > MaxBiasRadiusMeters {
		radiusMeters = MaxBiasRadiusMeters
	}

	return &model.SearchBias{
		Lat:          lat,
		Lng:          lng,
		RadiusMeters: radiusMeters,
	}, nil
}

// BiasViewport expands the bias circle into the bounding rectangle sent to
// the search provider.
func BiasViewport(bias *model.SearchBias) orb.Bound {
	center := orb.Point{bias.Lng, bias.Lat}
	return geo.NewBoundAroundPoint(center, bias.RadiusMeters)
}
