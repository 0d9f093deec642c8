package recommend

import (
	"math/rand"
	"sync"

	"motorhub/models"
)

// Rule caps and scores. Confidence is advisory display ranking only:
// vehicle-specific matches outrank the generic rules, and no rule is
// ever suppressed because of its score.
const (
	comboCap            = 3
	comboBundleDiscount = 15
	comboConfidence     = 75

	frequentCap        = 2
	frequentMinRating  = 4.0
	frequentConfidence = 70

	vehicleCap        = 3
	vehicleConfidence = 90
)

// Generator derives suggestion blocks from the current cart and
// catalog. Candidate selection above a rule's cap is randomized through
// the injected source, so two calls may suggest different products; a
// seeded source makes a run reproducible.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator seeds the candidate picker. Production wiring passes a
// time-based seed; tests pin one.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Recommend runs every applicable rule against one snapshot. The rules
// are independent and cumulative, an empty cart yields no
// recommendations, and a carted product id never appears in any block.
func (g *Generator) Recommend(snapshot *models.Catalog, c models.Cart) []models.Recommendation {
	if snapshot == nil || len(c.Lines) == 0 {
		return nil
	}

	var recs []models.Recommendation
	if combo := g.comboRule(snapshot, c); combo != nil {
		recs = append(recs, *combo)
	}
	if freq := g.frequentRule(snapshot, c); freq != nil {
		recs = append(recs, *freq)
	}
	if veh := g.vehicleRule(snapshot, c); veh != nil {
		recs = append(recs, *veh)
	}
	return recs
}

// comboRule suggests completing the set: products sharing a category
// with something already carted, with a flat bundle discount attached.
func (g *Generator) comboRule(snapshot *models.Catalog, c models.Cart) *models.Recommendation {
	categories := cartCategories(snapshot, c)
	if len(categories) == 0 {
		return nil
	}
	candidates := g.pick(snapshot, c, comboCap, func(p models.Product) bool {
		return categories[p.Category]
	})
	if len(candidates) == 0 {
		return nil
	}
	return &models.Recommendation{
		Title:          "Complete the set",
		Reason:         "Pairs with items in your cart",
		Products:       candidates,
		BundleDiscount: comboBundleDiscount,
		Confidence:     comboConfidence,
	}
}

// frequentRule suggests well-rated products bought alongside most
// orders. No discount attached.
func (g *Generator) frequentRule(snapshot *models.Catalog, c models.Cart) *models.Recommendation {
	candidates := g.pick(snapshot, c, frequentCap, func(p models.Product) bool {
		return p.Rating >= frequentMinRating
	})
	if len(candidates) == 0 {
		return nil
	}
	return &models.Recommendation{
		Title:      "Frequently bought together",
		Reason:     "Popular with similar orders",
		Products:   candidates,
		Confidence: frequentConfidence,
	}
}

// vehicleRule suggests products compatible with the same vehicle as the
// first carted item that declares compatibility.
func (g *Generator) vehicleRule(snapshot *models.Catalog, c models.Cart) *models.Recommendation {
	vehicleID := firstCartVehicle(snapshot, c)
	if vehicleID == "" {
		return nil
	}
	candidates := g.pick(snapshot, c, vehicleCap, func(p models.Product) bool {
		return p.CompatibleWith(vehicleID)
	})
	if len(candidates) == 0 {
		return nil
	}
	reason := "Fits your vehicle"
	if v, ok := snapshot.VehicleByID(vehicleID); ok {
		reason = "Fits your " + v.Make + " " + v.Model
	}
	return &models.Recommendation{
		Title:      "Picked for your vehicle",
		Reason:     reason,
		Products:   candidates,
		Confidence: vehicleConfidence,
	}
}

// pick gathers qualifying candidates, always excluding anything already
// carted, then randomly selects up to cap of them.
func (g *Generator) pick(snapshot *models.Catalog, c models.Cart, limit int, qualifies func(models.Product) bool) []models.Product {
	var candidates []models.Product
	for _, p := range snapshot.Products {
		if c.ContainsItem(p.ID) {
			continue
		}
		if qualifies(p) {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) <= limit {
		return candidates
	}

	g.mu.Lock()
	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	g.mu.Unlock()
	return candidates[:limit]
}

// cartCategories resolves the categories represented in the cart,
// via product category for product lines and service category for
// provider lines.
func cartCategories(snapshot *models.Catalog, c models.Cart) map[string]bool {
	categories := make(map[string]bool)
	for _, l := range c.Lines {
		if l.Key.ProviderID == "" {
			if p, ok := snapshot.ProductByID(l.Key.ItemID); ok {
				categories[p.Category] = true
			}
			continue
		}
		if svc, _, ok := snapshot.ProviderByKey(l.Key.ItemID, l.Key.ProviderID); ok {
			categories[svc.Category] = true
		}
	}
	return categories
}

// firstCartVehicle returns the first compatible-vehicle id declared by
// the earliest carted product, or "" when no carted item declares any.
func firstCartVehicle(snapshot *models.Catalog, c models.Cart) string {
	for _, l := range c.Lines {
		if l.Key.ProviderID != "" {
			continue
		}
		p, ok := snapshot.ProductByID(l.Key.ItemID)
		if !ok || len(p.CompatibleVehicles) == 0 {
			continue
		}
		return p.CompatibleVehicles[0]
	}
	return ""
}
