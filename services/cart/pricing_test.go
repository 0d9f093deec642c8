package cart

import (
	"testing"

	"motorhub/models"
	"motorhub/services/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discounted(v int64) *int64 { return &v }

var testRules = PricingRules{
	TaxRate:               0.18,
	FreeShippingThreshold: 2000,
	ShippingFee:           200,
	PointsPerUnit:         10,
	PointsUnit:            1000,
}

func pricingSnapshot() *models.Catalog {
	return &models.Catalog{
		Products: []models.Product{
			{ID: "brake-pads", Name: "Brake Pads", BasePrice: 500},
			{ID: "engine-oil", Name: "Engine Oil", BasePrice: 1500},
			{ID: "air-filter", Name: "Air Filter", BasePrice: 800, DiscountPrice: discounted(600), PromoID: "flash"},
		},
		Services: []models.Service{
			{ID: "car-wash", Name: "Premium Car Wash", Providers: []models.ServiceProvider{
				{ID: "shine-pro", Name: "ShinePro", BasePrice: 599},
			}},
		},
	}
}

func TestSummarizeDerivesAllTotals(t *testing.T) {
	s := Summarizer{Rules: testRules}
	c := models.Cart{SessionID: "s1", Lines: []models.CartLine{
		{Key: keyPads, Quantity: 2},
		{Key: keyOil, Quantity: 1},
	}}

	got := s.Summarize(c, pricingSnapshot())

	assert.Equal(t, int64(2500), got.Subtotal)
	assert.Equal(t, int64(450), got.Tax)
	assert.Equal(t, int64(0), got.Shipping, "subtotal above the threshold ships free")
	assert.Equal(t, int64(2950), got.GrandTotal)
	assert.Equal(t, int64(20), got.Points)
	assert.False(t, got.HasStale)
	require.Len(t, got.Lines, 2)
	assert.Equal(t, int64(1000), got.Lines[0].LineTotal)
	assert.Equal(t, int64(1500), got.Lines[1].LineTotal)
}

func TestSummarizeChargesShippingBelowThreshold(t *testing.T) {
	s := Summarizer{Rules: testRules}
	c := models.Cart{Lines: []models.CartLine{{Key: keyPads, Quantity: 1}}}

	got := s.Summarize(c, pricingSnapshot())
	assert.Equal(t, int64(500), got.Subtotal)
	assert.Equal(t, int64(200), got.Shipping)
	assert.Equal(t, int64(500+90+200), got.GrandTotal)
}

func TestSummarizeEmptyCart(t *testing.T) {
	s := Summarizer{Rules: testRules}

	got := s.Summarize(models.Cart{}, pricingSnapshot())
	assert.Zero(t, got.Subtotal)
	assert.Zero(t, got.Tax)
	assert.Zero(t, got.Shipping, "an empty cart is never charged shipping")
	assert.Zero(t, got.GrandTotal)
	assert.Zero(t, got.Points)
}

func TestSummarizeFlagsStaleLinesAtZero(t *testing.T) {
	s := Summarizer{Rules: testRules}
	gone := models.LineKey{ItemID: "discontinued"}
	c := models.Cart{Lines: []models.CartLine{
		{Key: keyPads, Quantity: 1},
		{Key: gone, Quantity: 3},
	}}

	got := s.Summarize(c, pricingSnapshot())

	assert.True(t, got.HasStale)
	assert.Equal(t, int64(500), got.Subtotal, "stale lines contribute nothing")
	require.Len(t, got.Lines, 2)
	stale := got.Lines[1]
	assert.True(t, stale.Stale)
	assert.Zero(t, stale.UnitPrice)
	assert.Zero(t, stale.LineTotal)
	assert.Equal(t, 3, stale.Quantity)
}

func TestSummarizePricesServiceProviderLines(t *testing.T) {
	s := Summarizer{Rules: testRules}
	c := models.Cart{Lines: []models.CartLine{{Key: keyWash, Quantity: 2}}}

	got := s.Summarize(c, pricingSnapshot())
	require.Len(t, got.Lines, 1)
	assert.Equal(t, int64(599), got.Lines[0].UnitPrice)
	assert.Equal(t, int64(1198), got.Subtotal)
	assert.Contains(t, got.Lines[0].Name, "ShinePro")
}

type gateStub map[string]bool

func (g gateStub) Active(id string) bool { return g[id] }

func TestSummarizeRereadsPromotionalPrices(t *testing.T) {
	key := models.LineKey{ItemID: "air-filter"}
	c := models.Cart{Lines: []models.CartLine{{Key: key, Quantity: 1}}}
	snap := pricingSnapshot()

	active := Summarizer{Pricer: catalog.Pricer{Promos: gateStub{"flash": true}}, Rules: testRules}
	assert.Equal(t, int64(600), active.Summarize(c, snap).Subtotal)

	// The same cart is re-priced at base once the promotion lapses.
	expired := Summarizer{Pricer: catalog.Pricer{Promos: gateStub{"flash": false}}, Rules: testRules}
	assert.Equal(t, int64(800), expired.Summarize(c, snap).Subtotal)
}

func TestSummarizeNilSnapshotFlagsEverything(t *testing.T) {
	s := Summarizer{Rules: testRules}
	c := models.Cart{Lines: []models.CartLine{{Key: keyPads, Quantity: 2}}}

	got := s.Summarize(c, nil)
	assert.True(t, got.HasStale)
	assert.Zero(t, got.Subtotal)
	assert.Zero(t, got.GrandTotal)
}
