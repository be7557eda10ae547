package repository

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/DebuggingNinjas/GeoAssist/internal/domain/model"
	"github.com/DebuggingNinjas/GeoAssist/internal/domain/repository"
)

const locationsCollection = "locations"

// FirestoreLocationsRepository stores catalog documents in Firestore.
type FirestoreLocationsRepository struct {
	client *firestore.Client
}

// NewFirestoreLocationsRepository creates a new repository instance.
func NewFirestoreLocationsRepository(client *firestore.Client) repository.LocationsRepository {
	return &FirestoreLocationsRepository{
		client: client,
	}
}

// GetAll returns every document in the locations collection.
func (r *FirestoreLocationsRepository) GetAll(ctx context.Context) ([]model.CatalogLocation, error) {
	locations := make([]model.CatalogLocation, 0)

	iter := r.client.Collection(locationsCollection).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read locations collection: %w", err)
		}

		var loc model.CatalogLocation
		if err := doc.DataTo(&loc); err != nil {
			// A single malformed document should not take the whole
			// catalog down with it.
			log.Printf("⚠️ Skipping malformed location document %s: %v", doc.Ref.ID, err)
			continue
		}
		loc.ID = doc.Ref.ID
		locations = append(locations, loc)
	}

	return locations, nil
}

// GetByID fetches a single document.
func (r *FirestoreLocationsRepository) GetByID(ctx context.Context, id string) (*model.CatalogLocation, error) {
	doc, err := r.client.Collection(locationsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to get location %s: %w", id, err)
	}

	var loc model.CatalogLocation
	if err := doc.DataTo(&loc); err != nil {
		return nil, fmt.Errorf("failed to decode location %s: %w", id, err)
	}
	loc.ID = doc.Ref.ID
	return &loc, nil
}

// Create validates and stores a new document under a generated ID.
func (r *FirestoreLocationsRepository) Create(ctx context.Context, loc *model.CatalogLocation) (*model.CatalogLocation, error) {
	if err := loc.Validate(); err != nil {
		return nil, fmt.Errorf("location validation failed: %w", err)
	}

	created := *loc
	created.ID = uuid.New().String()
	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now

	if _, err := r.client.Collection(locationsCollection).Doc(created.ID).Set(ctx, &created); err != nil {
		return nil, fmt.Errorf("failed to save location: %w", err)
	}

	log.Printf("✅ Location created: %s (%s)", created.ID, created.Name)
	return &created, nil
}

// Update validates and overwrites an existing document.
func (r *FirestoreLocationsRepository) Update(ctx context.Context, loc *model.CatalogLocation) error {
	if err := loc.Validate(); err != nil {
		return fmt.Errorf("location validation failed: %w", err)
	}

	docRef := r.client.Collection(locationsCollection).Doc(loc.ID)
	existing, err := docRef.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return repository.ErrLocationNotFound
		}
		return fmt.Errorf("failed to get location %s: %w", loc.ID, err)
	}

	var prev model.CatalogLocation
	if err := existing.DataTo(&prev); err == nil {
		loc.CreatedAt = prev.CreatedAt
	}
	loc.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, loc); err != nil {
		return fmt.Errorf("failed to update location %s: %w", loc.ID, err)
	}

	log.Printf("✅ Location updated: %s (%s)", loc.ID, loc.Name)
	return nil
}

// Delete removes a document.
func (r *FirestoreLocationsRepository) Delete(ctx context.Context, id string) error {
	docRef := r.client.Collection(locationsCollection).Doc(id)
	if _, err := docRef.Get(ctx); err != nil {
		if isNotFound(err) {
			return repository.ErrLocationNotFound
		}
		return fmt.Errorf("failed to get location %s: %w", id, err)
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete location %s: %w", id, err)
	}

	log.Printf("✅ Location deleted: %s", id)
	return nil
}

func isNotFound(err error) bool {
	status := err.Error()
	return strings.Contains(status, "NotFound") || strings.Contains(status, "not found")
}
