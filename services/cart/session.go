package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"motorhub/models"
	"motorhub/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists session carts and wishlists in Redis as JSON
// documents under the session id. Each session has one logical writer,
// so load-mutate-store needs no locking.
type SessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewSessionStore builds a store with the default session TTL.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{Client: client, TTL: utils.CartSessionTTL}
}

// GetCart loads the session's cart; a missing key yields a fresh empty
// cart rather than an error.
func (s *SessionStore) GetCart(ctx context.Context, sessionID string) (models.Cart, error) {
	data, err := s.Client.Get(ctx, utils.CartKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return models.Cart{SessionID: sessionID}, nil
	}
	if err != nil {
		return models.Cart{}, fmt.Errorf("failed to load cart session: %w", err)
	}
	var c models.Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return models.Cart{}, fmt.Errorf("failed to parse cart session: %w", err)
	}
	c.SessionID = sessionID
	return c, nil
}

// SaveCart stores the cart back under its session key.
func (s *SessionStore) SaveCart(ctx context.Context, c models.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal cart session: %w", err)
	}
	if err := s.Client.Set(ctx, utils.CartKeyPrefix+c.SessionID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store cart session: %w", err)
	}
	return nil
}

// GetWishlist loads the session's wishlist; missing means empty.
func (s *SessionStore) GetWishlist(ctx context.Context, sessionID string) (models.Wishlist, error) {
	data, err := s.Client.Get(ctx, utils.WishlistKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return models.Wishlist{SessionID: sessionID}, nil
	}
	if err != nil {
		return models.Wishlist{}, fmt.Errorf("failed to load wishlist session: %w", err)
	}
	var w models.Wishlist
	if err := json.Unmarshal([]byte(data), &w); err != nil {
		return models.Wishlist{}, fmt.Errorf("failed to parse wishlist session: %w", err)
	}
	w.SessionID = sessionID
	return w, nil
}

// SaveWishlist stores the wishlist back under its session key.
func (s *SessionStore) SaveWishlist(ctx context.Context, w models.Wishlist) error {
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("failed to marshal wishlist session: %w", err)
	}
	if err := s.Client.Set(ctx, utils.WishlistKeyPrefix+w.SessionID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store wishlist session: %w", err)
	}
	return nil
}
