package catalog

import "motorhub/models"

// CatalogService is the read surface the handlers consume: one
// consistent snapshot per call, filtered and sorted.
type CatalogService interface {
	Snapshot() *models.Catalog
	BrowseProducts(state models.FilterState) []models.Product
	BrowseServices(state models.FilterState) []models.Service
	Vehicles() []models.Vehicle
}

// DefaultCatalogService implements CatalogService over a Store.
type DefaultCatalogService struct {
	Store  *Store
	Pricer Pricer
}

// Snapshot exposes the current catalog snapshot.
func (s *DefaultCatalogService) Snapshot() *models.Catalog {
	return s.Store.Snapshot()
}

// BrowseProducts filters then sorts against a single snapshot.
func (s *DefaultCatalogService) BrowseProducts(state models.FilterState) []models.Product {
	snap := s.Store.Snapshot()
	filtered := FilterProducts(snap, state, s.Pricer)
	return SortProducts(filtered, state.Sort, s.Pricer)
}

// BrowseServices filters the service listings against a single snapshot.
func (s *DefaultCatalogService) BrowseServices(state models.FilterState) []models.Service {
	return FilterServices(s.Store.Snapshot(), state, s.Pricer)
}

// Vehicles returns the snapshot's vehicle reference data.
func (s *DefaultCatalogService) Vehicles() []models.Vehicle {
	return s.Store.Snapshot().Vehicles
}
