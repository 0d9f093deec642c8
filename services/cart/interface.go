package cart

import (
	"context"

	"motorhub/models"
)

// CartService is the session-scoped ledger surface the handlers use.
// Mutations return the freshly summarized cart so the client always
// renders consistent totals.
type CartService interface {
	Summary(ctx context.Context, sessionID string) (models.CartSummary, error)
	AddItem(ctx context.Context, sessionID string, key models.LineKey, qty int) (models.CartSummary, error)
	RemoveItem(ctx context.Context, sessionID string, key models.LineKey) (models.CartSummary, error)
	SetQuantity(ctx context.Context, sessionID string, key models.LineKey, qty int) (models.CartSummary, error)
	AdjustQuantity(ctx context.Context, sessionID string, key models.LineKey, delta int) (models.CartSummary, error)
	PruneStaleLines(ctx context.Context, sessionID string) (models.CartSummary, error)
	Wishlist(ctx context.Context, sessionID string) (models.Wishlist, error)
	ToggleWishlistEntry(ctx context.Context, sessionID string, key models.LineKey) (models.Wishlist, bool, error)
	Cart(ctx context.Context, sessionID string) (models.Cart, error)
}
