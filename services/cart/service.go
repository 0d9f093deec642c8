package cart

import (
	"context"

	"motorhub/models"
	"motorhub/services/catalog"

	"go.uber.org/zap"
)

// DefaultCartService implements CartService: load the session ledger,
// apply the pure operation, store it back, and summarize against the
// snapshot current at this call.
type DefaultCartService struct {
	Sessions   *SessionStore
	Catalog    catalog.CatalogService
	Summarizer Summarizer
	Logger     *zap.Logger
}

// Summary prices the cart against the current snapshot. Stale lines
// are flagged, logged, and contribute zero.
func (s *DefaultCartService) Summary(ctx context.Context, sessionID string) (models.CartSummary, error) {
	c, err := s.Sessions.GetCart(ctx, sessionID)
	if err != nil {
		return models.CartSummary{}, err
	}
	return s.summarize(c), nil
}

func (s *DefaultCartService) summarize(c models.Cart) models.CartSummary {
	summary := s.Summarizer.Summarize(c, s.Catalog.Snapshot())
	if summary.HasStale {
		s.Logger.Warn("cart references items missing from the catalog",
			zap.String("sessionId", c.SessionID))
	}
	return summary
}

func (s *DefaultCartService) mutate(ctx context.Context, sessionID string, op func(models.Cart) (models.Cart, error)) (models.CartSummary, error) {
	c, err := s.Sessions.GetCart(ctx, sessionID)
	if err != nil {
		return models.CartSummary{}, err
	}
	updated, err := op(c)
	if err != nil {
		return models.CartSummary{}, err
	}
	if err := s.Sessions.SaveCart(ctx, updated); err != nil {
		return models.CartSummary{}, err
	}
	return s.summarize(updated), nil
}

// AddItem merges qty into the session cart.
func (s *DefaultCartService) AddItem(ctx context.Context, sessionID string, key models.LineKey, qty int) (models.CartSummary, error) {
	return s.mutate(ctx, sessionID, func(c models.Cart) (models.Cart, error) {
		return AddItem(c, key, qty)
	})
}

// RemoveItem drops the line for key.
func (s *DefaultCartService) RemoveItem(ctx context.Context, sessionID string, key models.LineKey) (models.CartSummary, error) {
	return s.mutate(ctx, sessionID, func(c models.Cart) (models.Cart, error) {
		return RemoveItem(c, key), nil
	})
}

// SetQuantity overwrites a line's quantity.
func (s *DefaultCartService) SetQuantity(ctx context.Context, sessionID string, key models.LineKey, qty int) (models.CartSummary, error) {
	return s.mutate(ctx, sessionID, func(c models.Cart) (models.Cart, error) {
		return SetQuantity(c, key, qty)
	})
}

// AdjustQuantity applies a delta, floor-clamped at 1.
func (s *DefaultCartService) AdjustQuantity(ctx context.Context, sessionID string, key models.LineKey, delta int) (models.CartSummary, error) {
	return s.mutate(ctx, sessionID, func(c models.Cart) (models.Cart, error) {
		return AdjustQuantity(c, key, delta), nil
	})
}

// PruneStaleLines removes lines flagged stale against the current
// snapshot.
func (s *DefaultCartService) PruneStaleLines(ctx context.Context, sessionID string) (models.CartSummary, error) {
	snapshot := s.Catalog.Snapshot()
	return s.mutate(ctx, sessionID, func(c models.Cart) (models.Cart, error) {
		return PruneStale(c, snapshot), nil
	})
}

// Wishlist returns the session wishlist.
func (s *DefaultCartService) Wishlist(ctx context.Context, sessionID string) (models.Wishlist, error) {
	return s.Sessions.GetWishlist(ctx, sessionID)
}

// ToggleWishlistEntry flips membership for key and reports whether the
// key is now present.
func (s *DefaultCartService) ToggleWishlistEntry(ctx context.Context, sessionID string, key models.LineKey) (models.Wishlist, bool, error) {
	w, err := s.Sessions.GetWishlist(ctx, sessionID)
	if err != nil {
		return models.Wishlist{}, false, err
	}
	updated := ToggleWishlist(w, key)
	if err := s.Sessions.SaveWishlist(ctx, updated); err != nil {
		return models.Wishlist{}, false, err
	}
	return updated, updated.Contains(key), nil
}

// Cart returns the raw ledger for the session, for callers that need
// the lines without pricing (the recommender).
func (s *DefaultCartService) Cart(ctx context.Context, sessionID string) (models.Cart, error) {
	return s.Sessions.GetCart(ctx, sessionID)
}
