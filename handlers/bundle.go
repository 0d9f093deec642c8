// File: motorhub/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Catalog endpoints
	FilterProducts gin.HandlerFunc
	FilterServices gin.HandlerFunc
	ListVehicles   gin.HandlerFunc

	// Cart endpoints
	GetCart        gin.HandlerFunc
	AddCartItem    gin.HandlerFunc
	RemoveCartItem gin.HandlerFunc
	SetQuantity    gin.HandlerFunc
	AdjustQuantity gin.HandlerFunc
	PruneCart      gin.HandlerFunc

	// Wishlist endpoints
	GetWishlist    gin.HandlerFunc
	ToggleWishlist gin.HandlerFunc

	// Recommendation endpoints
	GetRecommendations gin.HandlerFunc

	// Rewards endpoints
	GetRewards   gin.HandlerFunc
	RedeemPoints gin.HandlerFunc

	// Promotion endpoints
	ListPromotions gin.HandlerFunc
	ResetPromotion gin.HandlerFunc

	// Checkout endpoints
	CreatePaymentIntent gin.HandlerFunc
}
