package models

import "time"

// PromoKind distinguishes time-limited promotion flavours.
type PromoKind string

const (
	PromoFlashSale PromoKind = "flash_sale"
	PromoSeasonal  PromoKind = "seasonal"
)

// Promotion is a countdown-driven offer. While active, discount prices
// tagged with its ID apply in effective-price computation; when the
// countdown reaches zero the promotion deactivates and stays inactive
// until an explicit reset.
type Promotion struct {
	ID       string        `bson:"id" json:"id"`
	Name     string        `bson:"name" json:"name"`
	Kind     PromoKind     `bson:"kind" json:"kind"`
	Duration time.Duration `bson:"duration" json:"duration"`
	EndsAt   time.Time     `bson:"endsAt" json:"endsAt"`
	Active   bool          `bson:"active" json:"active"`
}
