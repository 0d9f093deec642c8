// File: utils/constants.go
package utils

import "time"

// SessionHeader carries the session identifier between client and server.
const SessionHeader = "X-Session-ID"

// CartSessionTTL is the time-to-live for cart and wishlist session data.
const CartSessionTTL = 24 * time.Hour

// CartKeyPrefix is the prefix used for cart session keys.
const CartKeyPrefix = "cart:"

// WishlistKeyPrefix is the prefix used for wishlist session keys.
const WishlistKeyPrefix = "wishlist:"

// RewardsKeyPrefix is the prefix used for rewards balance keys.
const RewardsKeyPrefix = "rewards:"
