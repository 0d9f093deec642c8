package models

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortRelevance      SortKey = "relevance"
	SortPriceAsc       SortKey = "price_asc"
	SortPriceDesc      SortKey = "price_desc"
	SortRatingDesc     SortKey = "rating_desc"
	SortPopularityDesc SortKey = "popularity_desc"
	SortTrendingFirst  SortKey = "trending_first"
)

// FilterState is a snapshot of the active facets. A zero field means
// "no constraint" for that facet. Replacing the whole state is how the
// client requests a new result set; there is no incremental mutation.
type FilterState struct {
	VehicleID   string      `json:"vehicleId,omitempty"`
	VehicleType VehicleType `json:"vehicleType,omitempty"`
	Category    string      `json:"category,omitempty"`
	SubCategory string      `json:"subCategory,omitempty"`
	PriceMin    *int64      `json:"priceMin,omitempty"`
	PriceMax    *int64      `json:"priceMax,omitempty"`
	MinRating   float64     `json:"minRating,omitempty"`
	Query       string      `json:"query,omitempty"`
	InStockOnly bool        `json:"inStockOnly,omitempty"`
	Sort        SortKey     `json:"sort,omitempty"`
}
