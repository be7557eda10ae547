package usecase

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/DebuggingNinjas/GeoAssist/internal/domain/model"
	"github.com/DebuggingNinjas/GeoAssist/internal/domain/repository"
	"github.com/DebuggingNinjas/GeoAssist/internal/domain/service"
)

// SearchUseCase runs one search invocation: fetch both sources, narrow the
// catalog by the query text, then aggregate and derive facets.
type SearchUseCase interface {
	Search(ctx context.Context, query *model.SearchQuery) (*model.SearchResult, error)
}

const genericFetchError = "Some results could not be loaded. Please try again."

type searchUseCaseImpl struct {
	locationsRepo  repository.LocationsRepository
	searchProvider repository.PlaceSearchProvider
}

// NewSearchUseCase creates a new SearchUseCase instance.
func NewSearchUseCase(locationsRepo repository.LocationsRepository, searchProvider repository.PlaceSearchProvider) SearchUseCase {
	return &searchUseCaseImpl{
		locationsRepo:  locationsRepo,
		searchProvider: searchProvider,
	}
}

// Search issues the catalog query and the external search concurrently and
// waits for both to settle before aggregating. Each fetch is best-effort:
// on failure its result degrades to an empty slice and a single generic
// error string is surfaced, never per-source detail. Cancelling ctx
// cancels both in-flight fetches.
func (u *searchUseCaseImpl) Search(ctx context.Context, query *model.SearchQuery) (*model.SearchResult, error) {
	var (
		catalog     []model.CatalogLocation
		external    []model.Place
		catalogErr  bool
		externalErr bool
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		docs, err := u.locationsRepo.GetAll(gctx)
		if err != nil {
			log.Printf("⚠️ Catalog fetch failed, continuing with empty set: %v", err)
			catalog = []model.CatalogLocation{}
			catalogErr = true
			return nil
		}
		catalog = u.narrowCatalog(docs, query.Text)
		return nil
	})

	g.Go(func() error {
		places, err := u.searchProvider.SearchText(gctx, query.Text, query.Bias)
		if err != nil {
			log.Printf("⚠️ External search failed, continuing with empty set: %v", err)
			external = []model.Place{}
			externalErr = true
			return nil
		}
		external = places
		return nil
	})

	// Both goroutines recover their own failures, so this only waits.
	_ = g.Wait()

	result := &model.SearchResult{
		Results: service.Aggregate(catalog, external, query.Mode, query.Types),
		Facets:  service.ExtractTypeFacets(external),
	}
	if catalogErr || externalErr {
		result.Error = genericFetchError
	}

	return result, nil
}

// narrowCatalog applies the free-text substring match over the name and
// region fields before the documents reach the engine.
func (u *searchUseCaseImpl) narrowCatalog(docs []model.CatalogLocation, text string) []model.CatalogLocation {
	matched := make([]model.CatalogLocation, 0, len(docs))
	for _, doc := range docs {
		if doc.MatchesQuery(text) {
			matched = append(matched, doc)
		}
	}
	return matched
}
