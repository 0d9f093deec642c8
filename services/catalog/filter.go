package catalog

import (
	"strings"

	"motorhub/models"
)

// productPredicate is one independent facet. The pipeline is the AND of
// every active facet; an unset facet constrains nothing.
type productPredicate func(models.Product) bool

// FilterProducts applies the facet pipeline to one catalog snapshot.
// It re-derives the result from the snapshot on every call and never
// mutates it, so a fixed (snapshot, state) pair always yields the same
// result set.
func FilterProducts(snapshot *models.Catalog, state models.FilterState, pricer Pricer) []models.Product {
	if snapshot == nil {
		return nil
	}
	preds := buildProductPredicates(snapshot, state, pricer)

	out := make([]models.Product, 0, len(snapshot.Products))
	for _, p := range snapshot.Products {
		if passesAll(p, preds) {
			out = append(out, p)
		}
	}
	return out
}

func passesAll(p models.Product, preds []productPredicate) bool {
	for _, pred := range preds {
		if !pred(p) {
			return false
		}
	}
	return true
}

func buildProductPredicates(snapshot *models.Catalog, state models.FilterState, pricer Pricer) []productPredicate {
	var preds []productPredicate

	if state.VehicleID != "" {
		id := state.VehicleID
		preds = append(preds, func(p models.Product) bool {
			return p.CompatibleWith(id)
		})
	}
	if state.VehicleType != "" {
		// Resolve the type to the snapshot's vehicle ids once, up front.
		typed := make(map[string]bool)
		for _, v := range snapshot.Vehicles {
			if v.Type == state.VehicleType {
				typed[v.ID] = true
			}
		}
		preds = append(preds, func(p models.Product) bool {
			for _, vid := range p.CompatibleVehicles {
				if typed[vid] {
					return true
				}
			}
			return false
		})
	}
	if state.Category != "" {
		cat := state.Category
		preds = append(preds, func(p models.Product) bool {
			return strings.EqualFold(p.Category, cat)
		})
	}
	if state.SubCategory != "" {
		sub := state.SubCategory
		preds = append(preds, func(p models.Product) bool {
			return strings.EqualFold(p.SubCategory, sub)
		})
	}
	if state.PriceMin != nil || state.PriceMax != nil {
		min, max := state.PriceMin, state.PriceMax
		preds = append(preds, func(p models.Product) bool {
			price := pricer.EffectivePrice(p)
			if min != nil && price < *min {
				return false
			}
			if max != nil && price > *max {
				return false
			}
			return true
		})
	}
	if state.MinRating > 0 {
		threshold := state.MinRating
		preds = append(preds, func(p models.Product) bool {
			return p.Rating >= threshold
		})
	}
	if q := strings.TrimSpace(state.Query); q != "" {
		query := strings.ToLower(q)
		preds = append(preds, func(p models.Product) bool {
			return matchesQuery(query, p.Name, p.Description, p.Brand) ||
				anyMatches(query, p.Tags)
		})
	}
	if state.InStockOnly {
		// Low-stock items still pass; only out-of-stock is excluded.
		preds = append(preds, func(p models.Product) bool {
			return p.Stock != models.StockOut
		})
	}

	return preds
}

// matchesQuery reports a case-insensitive substring hit in any field.
// The query must already be lower-cased.
func matchesQuery(query string, fields ...string) bool {
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

func anyMatches(query string, tags []string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return false
}

// FilterServices applies the facet pipeline to the service listings.
// Provider-level facets (price, rating, free text) narrow each
// service's provider list; a service whose providers are all filtered
// out is dropped from the result rather than returned empty.
func FilterServices(snapshot *models.Catalog, state models.FilterState, pricer Pricer) []models.Service {
	if snapshot == nil {
		return nil
	}

	query := strings.ToLower(strings.TrimSpace(state.Query))
	out := make([]models.Service, 0, len(snapshot.Services))

	for _, svc := range snapshot.Services {
		if state.Category != "" && !strings.EqualFold(svc.Category, state.Category) {
			continue
		}
		serviceHit := query == "" || matchesQuery(query, svc.Name, svc.Description)

		kept := make([]models.ServiceProvider, 0, len(svc.Providers))
		for _, sp := range svc.Providers {
			if !providerPasses(sp, state, pricer, query, serviceHit) {
				continue
			}
			kept = append(kept, sp)
		}
		if len(kept) == 0 {
			continue
		}
		filtered := svc
		filtered.Providers = kept
		out = append(out, filtered)
	}
	return out
}

func providerPasses(sp models.ServiceProvider, state models.FilterState, pricer Pricer, query string, serviceHit bool) bool {
	price := pricer.ProviderPrice(sp)
	if state.PriceMin != nil && price < *state.PriceMin {
		return false
	}
	if state.PriceMax != nil && price > *state.PriceMax {
		return false
	}
	if state.MinRating > 0 && sp.Rating < state.MinRating {
		return false
	}
	if query != "" && !serviceHit &&
		!matchesQuery(query, sp.Name) && !anyMatches(query, sp.Features) {
		return false
	}
	return true
}
