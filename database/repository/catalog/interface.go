package catalogRepo

import (
	"context"

	"motorhub/models"
)

// CatalogRepository loads catalog snapshots from the external feed
// store. The core never mutates what it loads; each fetch produces a
// fresh snapshot that replaces the previous one wholesale.
type CatalogRepository interface {
	// FetchSnapshot assembles a full catalog snapshot: products,
	// services with providers, vehicles and promotion definitions.
	FetchSnapshot(ctx context.Context) (*models.Catalog, error)
}
