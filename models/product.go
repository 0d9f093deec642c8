package models

// StockStatus describes the availability of a catalog product.
type StockStatus string

const (
	StockIn  StockStatus = "in_stock"
	StockLow StockStatus = "low_stock"
	StockOut StockStatus = "out_of_stock"
)

// Product is a flat marketplace item (parts, accessories, consumables).
// Prices are in minor currency units. Products are immutable once loaded
// into a catalog snapshot; discount state changes arrive via a full
// snapshot replace from the promotions feed.
type Product struct {
	ID                 string      `bson:"id" json:"id"`
	Name               string      `bson:"name" json:"name"`
	Description        string      `bson:"description" json:"description,omitempty"`
	Brand              string      `bson:"brand" json:"brand,omitempty"`
	Category           string      `bson:"category" json:"category"`
	SubCategory        string      `bson:"subCategory" json:"subCategory,omitempty"`
	BasePrice          int64       `bson:"basePrice" json:"basePrice"`
	DiscountPrice      *int64      `bson:"discountPrice,omitempty" json:"discountPrice,omitempty"`
	PromoID            string      `bson:"promoId,omitempty" json:"promoId,omitempty"`
	Rating             float64     `bson:"rating" json:"rating"`
	ReviewCount        int         `bson:"reviewCount" json:"reviewCount"`
	Popularity         int         `bson:"popularity" json:"popularity"`
	Trending           bool        `bson:"trending" json:"trending"`
	CompatibleVehicles []string    `bson:"compatibleVehicles" json:"compatibleVehicles,omitempty"`
	Stock              StockStatus `bson:"stock" json:"stock"`
	Tags               []string    `bson:"tags" json:"tags,omitempty"`
}

// CompatibleWith reports whether the product lists the given vehicle id
// in its compatibility set.
func (p Product) CompatibleWith(vehicleID string) bool {
	for _, v := range p.CompatibleVehicles {
		if v == vehicleID {
			return true
		}
	}
	return false
}
