package catalog

import "motorhub/models"

// PromoGate answers whether a promotion's discount currently applies.
type PromoGate interface {
	Active(id string) bool
}

// Pricer resolves effective prices. A discount tied to a promotion only
// applies while that promotion is active; an untied discount always
// applies. With a nil gate, tied discounts are treated as active.
type Pricer struct {
	Promos PromoGate
}

// EffectivePrice returns the price a product currently sells at.
func (pr Pricer) EffectivePrice(p models.Product) int64 {
	if p.DiscountPrice == nil {
		return p.BasePrice
	}
	if p.PromoID != "" && pr.Promos != nil && !pr.Promos.Active(p.PromoID) {
		return p.BasePrice
	}
	return *p.DiscountPrice
}

// ProviderPrice returns the price a service provider currently charges.
func (pr Pricer) ProviderPrice(sp models.ServiceProvider) int64 {
	if sp.DiscountPrice == nil {
		return sp.BasePrice
	}
	if sp.PromoID != "" && pr.Promos != nil && !pr.Promos.Active(sp.PromoID) {
		return sp.BasePrice
	}
	return *sp.DiscountPrice
}
