package repository

import (
	"context"
	"errors"

	"github.com/DebuggingNinjas/GeoAssist/internal/domain/model"
)

// ErrLocationNotFound is returned when a catalog document does not exist.
var ErrLocationNotFound = errors.New("location not found")

// LocationsRepository is the catalog document store: the curated place
// entries maintained through the admin screens and merged into search
// results alongside the external provider.
type LocationsRepository interface {
	// GetAll returns every document in the locations collection.
	GetAll(ctx context.Context) ([]model.CatalogLocation, error)

	// GetByID returns a single document, or ErrLocationNotFound.
	GetByID(ctx context.Context, id string) (*model.CatalogLocation, error)

	// Create stores a new document and returns it with its generated ID.
	Create(ctx context.Context, loc *model.CatalogLocation) (*model.CatalogLocation, error)

	// Update overwrites an existing document, or returns ErrLocationNotFound.
	Update(ctx context.Context, loc *model.CatalogLocation) error

	// Delete removes a document, or returns ErrLocationNotFound.
	Delete(ctx context.Context, id string) error
}
