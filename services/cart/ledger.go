package cart

import (
	"time"

	"motorhub/models"
)

// Pure ledger operations. Every operation returns a new cart value and
// leaves its input untouched, so a failed validation can never leave a
// half-mutated cart behind.

func cloneLines(lines []models.CartLine) []models.CartLine {
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out
}

// AddItem merges qty into an existing line for the key or appends a new
// one; there is never more than one line per key. Quantities below 1
// are rejected with ErrInvalidQuantity.
func AddItem(c models.Cart, key models.LineKey, qty int) (models.Cart, error) {
	if qty < 1 {
		return c, ErrInvalidQuantity
	}
	lines := cloneLines(c.Lines)
	merged := false
	for i := range lines {
		if lines[i].Key == key {
			lines[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, models.CartLine{Key: key, Quantity: qty, AddedAt: time.Now()})
	}
	c.Lines = lines
	c.UpdatedAt = time.Now()
	return c, nil
}

// RemoveItem drops the line for the key. Removing an absent key is a
// no-op, not an error.
func RemoveItem(c models.Cart, key models.LineKey) models.Cart {
	lines := make([]models.CartLine, 0, len(c.Lines))
	for _, l := range c.Lines {
		if l.Key != key {
			lines = append(lines, l)
		}
	}
	c.Lines = lines
	c.UpdatedAt = time.Now()
	return c
}

// SetQuantity overwrites the quantity of an existing line. Quantities
// below 1 are rejected with ErrInvalidQuantity; a line never reaches
// zero this way, removal is only via RemoveItem. Setting an absent key
// is a no-op.
func SetQuantity(c models.Cart, key models.LineKey, qty int) (models.Cart, error) {
	if qty < 1 {
		return c, ErrInvalidQuantity
	}
	lines := cloneLines(c.Lines)
	for i := range lines {
		if lines[i].Key == key {
			lines[i].Quantity = qty
			break
		}
	}
	c.Lines = lines
	c.UpdatedAt = time.Now()
	return c, nil
}

// AdjustQuantity applies a delta to an existing line, floor-clamped at
// 1: decrementing a quantity-1 line leaves it at 1 rather than removing
// it. That mirrors the shipped storefront behaviour; auto-remove at
// zero was deliberately not introduced here.
func AdjustQuantity(c models.Cart, key models.LineKey, delta int) models.Cart {
	lines := cloneLines(c.Lines)
	for i := range lines {
		if lines[i].Key == key {
			q := lines[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			lines[i].Quantity = q
			break
		}
	}
	c.Lines = lines
	c.UpdatedAt = time.Now()
	return c
}

// ToggleWishlist inserts the key if absent and removes it if present.
// A pure toggle: applying it twice restores the original membership.
func ToggleWishlist(w models.Wishlist, key models.LineKey) models.Wishlist {
	entries := make([]models.LineKey, 0, len(w.Entries))
	found := false
	for _, e := range w.Entries {
		if e == key {
			found = true
			continue
		}
		entries = append(entries, e)
	}
	if !found {
		entries = append(entries, key)
	}
	w.Entries = entries
	w.UpdatedAt = time.Now()
	return w
}

// PruneStale drops lines whose key no longer resolves in the given
// snapshot. Summaries flag such lines; this is the follow-up that
// removes them.
func PruneStale(c models.Cart, snapshot *models.Catalog) models.Cart {
	lines := make([]models.CartLine, 0, len(c.Lines))
	for _, l := range c.Lines {
		if _, ok := resolveLine(snapshot, l.Key); ok {
			lines = append(lines, l)
		}
	}
	c.Lines = lines
	c.UpdatedAt = time.Now()
	return c
}
