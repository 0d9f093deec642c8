package cart

import (
	"testing"

	"motorhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	keyPads = models.LineKey{ItemID: "brake-pads"}
	keyOil  = models.LineKey{ItemID: "engine-oil"}
	keyWash = models.LineKey{ItemID: "car-wash", ProviderID: "shine-pro"}
)

func TestAddItemMergesDuplicateKeys(t *testing.T) {
	c := models.Cart{SessionID: "s1"}

	c, err := AddItem(c, keyPads, 1)
	require.NoError(t, err)
	c, err = AddItem(c, keyPads, 1)
	require.NoError(t, err)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)
}

func TestAddItemKeepsProviderVariantsApart(t *testing.T) {
	c := models.Cart{}
	other := models.LineKey{ItemID: "car-wash", ProviderID: "quick-suds"}

	c, err := AddItem(c, keyWash, 1)
	require.NoError(t, err)
	c, err = AddItem(c, other, 1)
	require.NoError(t, err)

	assert.Len(t, c.Lines, 2)
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	c := models.Cart{}
	c, err := AddItem(c, keyPads, 3)
	require.NoError(t, err)

	for _, qty := range []int{0, -1, -5} {
		got, err := AddItem(c, keyPads, qty)
		require.ErrorIs(t, err, ErrInvalidQuantity)
		assert.Equal(t, c.Lines, got.Lines, "cart must be unchanged after a rejected add")
	}
}

func TestAddItemDoesNotMutateInput(t *testing.T) {
	orig := models.Cart{Lines: []models.CartLine{{Key: keyPads, Quantity: 1}}}

	_, err := AddItem(orig, keyPads, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, orig.Lines[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	c := models.Cart{Lines: []models.CartLine{
		{Key: keyPads, Quantity: 2},
		{Key: keyOil, Quantity: 1},
	}}

	c = RemoveItem(c, keyPads)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, keyOil, c.Lines[0].Key)

	// Removing an absent key is a no-op.
	c = RemoveItem(c, keyPads)
	assert.Len(t, c.Lines, 1)
}

func TestSetQuantity(t *testing.T) {
	c := models.Cart{Lines: []models.CartLine{{Key: keyPads, Quantity: 2}}}

	c, err := SetQuantity(c, keyPads, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Lines[0].Quantity)

	_, err = SetQuantity(c, keyPads, 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Equal(t, 7, c.Lines[0].Quantity)
}

func TestAdjustQuantityClampsAtOne(t *testing.T) {
	c := models.Cart{Lines: []models.CartLine{{Key: keyPads, Quantity: 1}}}

	// Decrementing a quantity-1 line keeps it in the cart at 1.
	c = AdjustQuantity(c, keyPads, -1)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 1, c.Lines[0].Quantity)

	c = AdjustQuantity(c, keyPads, -100)
	assert.Equal(t, 1, c.Lines[0].Quantity)

	c = AdjustQuantity(c, keyPads, 3)
	assert.Equal(t, 4, c.Lines[0].Quantity)
}

func TestToggleWishlistIsAnInvolution(t *testing.T) {
	w := models.Wishlist{SessionID: "s1"}

	w = ToggleWishlist(w, keyPads)
	assert.True(t, w.Contains(keyPads))

	w = ToggleWishlist(w, keyPads)
	assert.False(t, w.Contains(keyPads))
	assert.Empty(t, w.Entries)
}

func TestToggleWishlistKeepsOtherEntries(t *testing.T) {
	w := models.Wishlist{}
	w = ToggleWishlist(w, keyPads)
	w = ToggleWishlist(w, keyWash)

	w = ToggleWishlist(w, keyPads)
	assert.False(t, w.Contains(keyPads))
	assert.True(t, w.Contains(keyWash))
}

func TestPruneStaleDropsUnresolvableLines(t *testing.T) {
	snapshot := &models.Catalog{
		Products: []models.Product{{ID: "brake-pads", BasePrice: 999}},
	}
	c := models.Cart{Lines: []models.CartLine{
		{Key: keyPads, Quantity: 1},
		{Key: models.LineKey{ItemID: "discontinued"}, Quantity: 2},
	}}

	c = PruneStale(c, snapshot)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, keyPads, c.Lines[0].Key)
}
