package catalog

import (
	"testing"

	"motorhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func i64(v int64) *int64 { return &v }

func testCatalog() *models.Catalog {
	return &models.Catalog{
		Products: []models.Product{
			{
				ID: "brake-pads", Name: "Ceramic Brake Pads", Brand: "StopRight",
				Category: "Brakes", SubCategory: "Pads", BasePrice: 999,
				Rating: 4.5, Popularity: 80, Trending: true,
				CompatibleVehicles: []string{"v1"}, Stock: models.StockIn,
				Tags: []string{"ceramic", "front"},
			},
			{
				ID: "brake-discs", Name: "Vented Brake Discs", Brand: "StopRight",
				Category: "Brakes", SubCategory: "Discs", BasePrice: 2999,
				Rating: 4.0, Popularity: 60,
				CompatibleVehicles: []string{"v2"}, Stock: models.StockLow,
			},
			{
				ID: "engine-oil", Name: "Synthetic Engine Oil 5W-30", Brand: "LubeMax",
				Category: "Fluids", BasePrice: 1499, DiscountPrice: i64(1199),
				Rating: 4.8, Popularity: 95,
				CompatibleVehicles: []string{"v1", "v2"}, Stock: models.StockIn,
				Tags: []string{"synthetic", "oil"},
			},
			{
				ID: "wiper-blades", Name: "All-Season Wiper Blades", Brand: "ClearView",
				Category: "Exterior", BasePrice: 499,
				Rating: 3.5, Popularity: 40,
				CompatibleVehicles: []string{"v2"}, Stock: models.StockOut,
			},
		},
		Services: []models.Service{
			{
				ID: "car-wash", Name: "Premium Car Wash", Category: "Cleaning",
				Providers: []models.ServiceProvider{
					{ID: "shine-pro", Name: "ShinePro", Rating: 4.6, BasePrice: 599},
					{ID: "quick-suds", Name: "QuickSuds", Rating: 3.9, BasePrice: 399},
				},
			},
			{
				ID: "detailing", Name: "Full Detailing", Category: "Cleaning",
				Providers: []models.ServiceProvider{
					{ID: "detail-kings", Name: "DetailKings", Rating: 4.9, BasePrice: 4999},
				},
			},
		},
		Vehicles: []models.Vehicle{
			{ID: "v1", Type: models.VehicleFourWheeler, Make: "Maruti", Model: "Swift", Year: 2021},
			{ID: "v2", Type: models.VehicleTwoWheeler, Make: "Hero", Model: "Splendor", Year: 2019},
		},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestFilterNoConstraintsReturnsEverything(t *testing.T) {
	snap := testCatalog()
	got := FilterProducts(snap, models.FilterState{}, Pricer{})
	assert.Len(t, got, len(snap.Products))
}

func TestFilterPriceRangeInclusive(t *testing.T) {
	snap := testCatalog()
	state := models.FilterState{PriceMin: i64(0), PriceMax: i64(1500)}
	got := FilterProducts(snap, state, Pricer{})
	// engine-oil passes on its effective (discounted) price of 1199.
	assert.ElementsMatch(t, []string{"brake-pads", "engine-oil", "wiper-blades"}, ids(got))

	// Boundary is inclusive.
	state = models.FilterState{PriceMin: i64(999), PriceMax: i64(999)}
	got = FilterProducts(snap, state, Pricer{})
	assert.Equal(t, []string{"brake-pads"}, ids(got))
}

func TestFilterRatingThreshold(t *testing.T) {
	got := FilterProducts(testCatalog(), models.FilterState{MinRating: 4.5}, Pricer{})
	assert.ElementsMatch(t, []string{"brake-pads", "engine-oil"}, ids(got))
}

func TestFilterVehicleCompatibility(t *testing.T) {
	got := FilterProducts(testCatalog(), models.FilterState{VehicleID: "v1"}, Pricer{})
	assert.ElementsMatch(t, []string{"brake-pads", "engine-oil"}, ids(got))

	got = FilterProducts(testCatalog(), models.FilterState{VehicleType: models.VehicleTwoWheeler}, Pricer{})
	assert.ElementsMatch(t, []string{"brake-discs", "engine-oil", "wiper-blades"}, ids(got))
}

func TestFilterQueryMatchesAnyField(t *testing.T) {
	// Brand hit.
	got := FilterProducts(testCatalog(), models.FilterState{Query: "stopright"}, Pricer{})
	assert.ElementsMatch(t, []string{"brake-pads", "brake-discs"}, ids(got))

	// Tag hit only.
	got = FilterProducts(testCatalog(), models.FilterState{Query: "ceramic"}, Pricer{})
	assert.Equal(t, []string{"brake-pads"}, ids(got))

	// Case-insensitive name hit.
	got = FilterProducts(testCatalog(), models.FilterState{Query: "WIPER"}, Pricer{})
	assert.Equal(t, []string{"wiper-blades"}, ids(got))
}

func TestFilterStockOnlyKeepsLowStock(t *testing.T) {
	got := FilterProducts(testCatalog(), models.FilterState{InStockOnly: true}, Pricer{})
	assert.NotContains(t, ids(got), "wiper-blades")
	assert.Contains(t, ids(got), "brake-discs") // low stock still passes
}

func TestFilterFacetsCombineWithAnd(t *testing.T) {
	state := models.FilterState{
		Category:  "Brakes",
		PriceMax:  i64(1500),
		MinRating: 4.0,
	}
	got := FilterProducts(testCatalog(), state, Pricer{})
	assert.Equal(t, []string{"brake-pads"}, ids(got))
}

func TestFilterIdempotence(t *testing.T) {
	snap := testCatalog()
	state := models.FilterState{Category: "Brakes", PriceMax: i64(3000)}

	once := FilterProducts(snap, state, Pricer{})
	resnap := &models.Catalog{Products: once, Vehicles: snap.Vehicles}
	twice := FilterProducts(resnap, state, Pricer{})
	assert.Equal(t, once, twice)
}

func TestFilterMonotonicity(t *testing.T) {
	snap := testCatalog()
	base := models.FilterState{PriceMin: i64(0), PriceMax: i64(3000), MinRating: 3.0}
	baseline := len(FilterProducts(snap, base, Pricer{}))

	narrowerPrice := base
	narrowerPrice.PriceMax = i64(1200)
	assert.LessOrEqual(t, len(FilterProducts(snap, narrowerPrice, Pricer{})), baseline)

	higherRating := base
	higherRating.MinRating = 4.6
	assert.LessOrEqual(t, len(FilterProducts(snap, higherRating, Pricer{})), baseline)
}

func TestFilterIsDeterministic(t *testing.T) {
	snap := testCatalog()
	state := models.FilterState{Query: "brake", MinRating: 3.0}
	first := FilterProducts(snap, state, Pricer{})
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, FilterProducts(snap, state, Pricer{}))
	}
}

func TestFilterServicesDropsEmptyParents(t *testing.T) {
	snap := testCatalog()

	// Price cap excludes DetailKings entirely; its parent service must
	// be dropped, not returned with zero providers.
	state := models.FilterState{PriceMax: i64(1000)}
	got := FilterServices(snap, state, Pricer{})
	require.Len(t, got, 1)
	assert.Equal(t, "car-wash", got[0].ID)
	assert.Len(t, got[0].Providers, 2)

	// Rating floor narrows the provider list within the kept parent.
	state = models.FilterState{MinRating: 4.5}
	got = FilterServices(snap, state, Pricer{})
	require.Len(t, got, 2)
	assert.Len(t, got[0].Providers, 1)
	assert.Equal(t, "shine-pro", got[0].Providers[0].ID)
}

func TestFilterServicesQueryFallsThroughToProviders(t *testing.T) {
	got := FilterServices(testCatalog(), models.FilterState{Query: "quicksuds"}, Pricer{})
	require.Len(t, got, 1)
	require.Len(t, got[0].Providers, 1)
	assert.Equal(t, "quick-suds", got[0].Providers[0].ID)
}

func TestEffectivePricePromoGating(t *testing.T) {
	oil := models.Product{ID: "oil", BasePrice: 1499, DiscountPrice: i64(1199), PromoID: "flash"}

	active := Pricer{Promos: stubGate{"flash": true}}
	assert.Equal(t, int64(1199), active.EffectivePrice(oil))

	expired := Pricer{Promos: stubGate{"flash": false}}
	assert.Equal(t, int64(1499), expired.EffectivePrice(oil))

	// Untied discounts always apply.
	oil.PromoID = ""
	assert.Equal(t, int64(1199), expired.EffectivePrice(oil))
}

type stubGate map[string]bool

func (g stubGate) Active(id string) bool { return g[id] }
