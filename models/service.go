package models

// ServiceProvider is one provider offering a bookable service. Two
// providers of the same service are independent cart lines, so cart and
// wishlist operations always key on the (serviceId, providerId) pair.
type ServiceProvider struct {
	ID            string   `bson:"id" json:"id"`
	Name          string   `bson:"name" json:"name"`
	Rating        float64  `bson:"rating" json:"rating"`
	BasePrice     int64    `bson:"basePrice" json:"basePrice"`
	DiscountPrice *int64   `bson:"discountPrice,omitempty" json:"discountPrice,omitempty"`
	PromoID       string   `bson:"promoId,omitempty" json:"promoId,omitempty"`
	Recommended   bool     `bson:"recommended" json:"recommended"`
	Features      []string `bson:"features" json:"features,omitempty"`
}

// Service aggregates one or more providers under a service category
// (car wash, tyre change, periodic service, ...).
type Service struct {
	ID          string            `bson:"id" json:"id"`
	Name        string            `bson:"name" json:"name"`
	Category    string            `bson:"category" json:"category"`
	Description string            `bson:"description" json:"description,omitempty"`
	Providers   []ServiceProvider `bson:"providers" json:"providers"`
}
