package cart

import (
	"math"

	"motorhub/models"
	"motorhub/services/catalog"
	"motorhub/services/rewards"
)

// PricingRules are the configuration constants behind derived totals.
// Amounts are minor currency units.
type PricingRules struct {
	TaxRate               float64
	FreeShippingThreshold int64
	ShippingFee           int64
	PointsPerUnit         int64
	PointsUnit            int64
}

// Summarizer derives the cart view from the live catalog. Unit prices
// are re-read from the current snapshot on every call, not captured at
// add time, so a promotion expiring mid-session changes displayed
// totals retroactively. That matches the shipped storefront; snapshot
// pricing would need a product decision first.
type Summarizer struct {
	Pricer catalog.Pricer
	Rules  PricingRules
}

// lineRef is a cart key resolved against one snapshot.
type lineRef struct {
	name     string
	product  *models.Product
	provider *models.ServiceProvider
}

func resolveLine(snapshot *models.Catalog, key models.LineKey) (lineRef, bool) {
	if snapshot == nil {
		return lineRef{}, false
	}
	if key.ProviderID == "" {
		if p, ok := snapshot.ProductByID(key.ItemID); ok {
			return lineRef{name: p.Name, product: &p}, true
		}
		return lineRef{}, false
	}
	if svc, sp, ok := snapshot.ProviderByKey(key.ItemID, key.ProviderID); ok {
		return lineRef{name: svc.Name + " — " + sp.Name, provider: &sp}, true
	}
	return lineRef{}, false
}

func (s Summarizer) unitPrice(ref lineRef) int64 {
	if ref.product != nil {
		return s.Pricer.EffectivePrice(*ref.product)
	}
	if ref.provider != nil {
		return s.Pricer.ProviderPrice(*ref.provider)
	}
	return 0
}

// Summarize prices every line against the snapshot and derives the
// totals. A line whose key no longer resolves contributes zero and is
// flagged stale for pruning; it never aborts the computation and is
// never counted at a stale price.
func (s Summarizer) Summarize(c models.Cart, snapshot *models.Catalog) models.CartSummary {
	summary := models.CartSummary{
		SessionID: c.SessionID,
		Lines:     make([]models.PricedLine, 0, len(c.Lines)),
	}

	for _, l := range c.Lines {
		priced := models.PricedLine{Key: l.Key, Quantity: l.Quantity}
		ref, ok := resolveLine(snapshot, l.Key)
		if !ok {
			priced.Stale = true
			summary.HasStale = true
			summary.Lines = append(summary.Lines, priced)
			continue
		}
		priced.Name = ref.name
		priced.UnitPrice = s.unitPrice(ref)
		priced.LineTotal = priced.UnitPrice * int64(l.Quantity)
		summary.Subtotal += priced.LineTotal
		summary.Lines = append(summary.Lines, priced)
	}

	summary.Tax = int64(math.Round(float64(summary.Subtotal) * s.Rules.TaxRate))
	if summary.Subtotal > 0 && summary.Subtotal <= s.Rules.FreeShippingThreshold {
		summary.Shipping = s.Rules.ShippingFee
	}
	summary.GrandTotal = summary.Subtotal + summary.Tax + summary.Shipping
	summary.Points = rewards.PointsEarned(summary.Subtotal, s.Rules.PointsUnit, s.Rules.PointsPerUnit)
	return summary
}
