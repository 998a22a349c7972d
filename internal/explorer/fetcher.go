package explorer

import (
	"context"

	"westudy/internal/domain/models"
	"westudy/internal/services"
)

// ServiceFetcher adapts the listing service for in-process explore clients,
// such as the server-rendered preview and integration tests.
type ServiceFetcher struct {
	Listings services.ListingService
}

func (f ServiceFetcher) FetchListings(_ context.Context, page, limit int, filters models.ListingFilters) ([]models.Listing, error) {
	return f.Listings.List(filters, page, limit)
}
