package models

import "time"

// LineKey identifies a cart or wishlist line. For flat products
// ProviderID is empty; for booked services it is the provider offering
// the service, so the same service from two providers stays two lines.
type LineKey struct {
	ItemID     string `json:"itemId"`
	ProviderID string `json:"providerId,omitempty"`
}

// CartLine is one selection in a session cart. Quantity is always >= 1;
// the unit price is not captured here but re-read from the live catalog
// when totals are computed.
type CartLine struct {
	Key      LineKey   `json:"key"`
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"addedAt,omitzero"`
}

// Cart holds a single session's selections. There is at most one line
// per LineKey; adding an existing key increments its quantity.
type Cart struct {
	SessionID string     `json:"sessionId"`
	Lines     []CartLine `json:"lines"`
	UpdatedAt time.Time  `json:"updatedAt,omitzero"`
}

// Contains reports whether the cart has a line for the given key.
func (c Cart) Contains(key LineKey) bool {
	for _, l := range c.Lines {
		if l.Key == key {
			return true
		}
	}
	return false
}

// ContainsItem reports whether any line references the given item id,
// regardless of provider.
func (c Cart) ContainsItem(itemID string) bool {
	for _, l := range c.Lines {
		if l.Key.ItemID == itemID {
			return true
		}
	}
	return false
}

// Wishlist is a session-scoped membership set. Entries carry no
// quantity or ordering semantics.
type Wishlist struct {
	SessionID string    `json:"sessionId"`
	Entries   []LineKey `json:"entries"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// Contains reports whether the wishlist holds the given key.
func (w Wishlist) Contains(key LineKey) bool {
	for _, e := range w.Entries {
		if e == key {
			return true
		}
	}
	return false
}

// PricedLine is a cart line joined against the current catalog
// snapshot. Stale marks lines whose key no longer resolves; they
// contribute zero to totals and should be pruned.
type PricedLine struct {
	Key       LineKey `json:"key"`
	Name      string  `json:"name,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice int64   `json:"unitPrice"`
	LineTotal int64   `json:"lineTotal"`
	Stale     bool    `json:"stale,omitempty"`
}

// CartSummary is the fully derived cart view returned to the
// presentation layer. All amounts are minor currency units.
type CartSummary struct {
	SessionID  string       `json:"sessionId"`
	Lines      []PricedLine `json:"lines"`
	Subtotal   int64        `json:"subtotal"`
	Tax        int64        `json:"tax"`
	Shipping   int64        `json:"shipping"`
	GrandTotal int64        `json:"grandTotal"`
	Points     int64        `json:"pointsEarned"`
	HasStale   bool         `json:"hasStale,omitempty"`
}
