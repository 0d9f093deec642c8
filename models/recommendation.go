package models

// Recommendation is a generated, non-persisted suggestion block derived
// from the current cart and catalog. Confidence is advisory: it ranks
// and labels the block but never decides whether it is shown.
type Recommendation struct {
	Title          string    `json:"title"`
	Reason         string    `json:"reason"`
	Products       []Product `json:"products"`
	BundleDiscount int       `json:"bundleDiscount,omitempty"`
	Confidence     int       `json:"confidence"`
}
