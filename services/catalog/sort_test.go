package catalog

import (
	"testing"

	"motorhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortFixture() []models.Product {
	return []models.Product{
		{ID: "a", BasePrice: 2999, Rating: 4.0, Popularity: 60},
		{ID: "b", BasePrice: 999, Rating: 4.5, Popularity: 80, Trending: true},
		{ID: "c", BasePrice: 1499, DiscountPrice: i64(899), Rating: 4.8, Popularity: 95},
		{ID: "d", BasePrice: 999, Rating: 3.5, Popularity: 40},
	}
}

func TestSortPriceUsesEffectivePrice(t *testing.T) {
	got := SortProducts(sortFixture(), models.SortPriceAsc, Pricer{})
	// c sorts by its discounted 899, not its base 1499.
	assert.Equal(t, []string{"c", "b", "d", "a"}, ids(got))

	got = SortProducts(sortFixture(), models.SortPriceDesc, Pricer{})
	assert.Equal(t, []string{"a", "b", "d", "c"}, ids(got))
}

func TestSortRatingAndPopularity(t *testing.T) {
	got := SortProducts(sortFixture(), models.SortRatingDesc, Pricer{})
	assert.Equal(t, []string{"c", "b", "a", "d"}, ids(got))

	got = SortProducts(sortFixture(), models.SortPopularityDesc, Pricer{})
	assert.Equal(t, []string{"c", "b", "a", "d"}, ids(got))
}

func TestSortTrendingFirstKeepsRelativeOrder(t *testing.T) {
	got := SortProducts(sortFixture(), models.SortTrendingFirst, Pricer{})
	// b floats to the front; everyone else keeps catalog order.
	assert.Equal(t, []string{"b", "a", "c", "d"}, ids(got))
}

func TestSortIsStableOnTies(t *testing.T) {
	// b and d share a price; ascending price must keep b before d.
	got := SortProducts(sortFixture(), models.SortPriceAsc, Pricer{})
	require.Equal(t, "b", got[1].ID)
	require.Equal(t, "d", got[2].ID)
}

func TestSortRelevancePreservesInputOrder(t *testing.T) {
	in := sortFixture()
	assert.Equal(t, ids(in), ids(SortProducts(in, models.SortRelevance, Pricer{})))
	assert.Equal(t, ids(in), ids(SortProducts(in, "", Pricer{})))
}

func TestSortPreservesMembershipAndInput(t *testing.T) {
	in := sortFixture()
	got := SortProducts(in, models.SortPriceDesc, Pricer{})

	assert.ElementsMatch(t, ids(in), ids(got))
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(in), "input slice must not be reordered")
}

func TestStoreSwapsWholeSnapshots(t *testing.T) {
	store := NewStore()
	require.NotNil(t, store.Snapshot())
	assert.Empty(t, store.Snapshot().Products)

	first := &models.Catalog{Products: sortFixture()}
	store.Replace(first)
	assert.Same(t, first, store.Snapshot())

	// A reader holding the old snapshot is unaffected by the swap.
	held := store.Snapshot()
	store.Replace(&models.Catalog{})
	assert.Len(t, held.Products, 4)
	assert.Empty(t, store.Snapshot().Products)

	store.Replace(nil)
	require.NotNil(t, store.Snapshot())
}
