package catalog

import (
	"sort"

	"motorhub/models"
)

// SortProducts orders a result set by the given key. The sort is stable
// (ties keep their pre-sort relative order) and the input slice is
// never mutated; callers always get a copy. SortRelevance is a
// pass-through preserving catalog order.
func SortProducts(items []models.Product, key models.SortKey, pricer Pricer) []models.Product {
	out := make([]models.Product, len(items))
	copy(out, items)

	switch key {
	case models.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return pricer.EffectivePrice(out[i]) < pricer.EffectivePrice(out[j])
		})
	case models.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return pricer.EffectivePrice(out[i]) > pricer.EffectivePrice(out[j])
		})
	case models.SortRatingDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	case models.SortPopularityDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Popularity > out[j].Popularity
		})
	case models.SortTrendingFirst:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Trending && !out[j].Trending
		})
	case models.SortRelevance, "":
		// Catalog order is the relevance order.
	}
	return out
}
