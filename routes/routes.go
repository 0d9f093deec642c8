package routes

import (
	"net/http"
	"time"

	"motorhub/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers browse endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.POST("/filter", hb.FilterProducts)
		api.POST("/services/filter", hb.FilterServices)
		api.GET("/vehicles", hb.ListVehicles)
	}
}

// RegisterCartRoutes registers cart and wishlist endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.GET("", hb.GetCart)
		api.POST("/items", hb.AddCartItem)
		api.DELETE("/items", hb.RemoveCartItem)
		api.PUT("/items/quantity", hb.SetQuantity)
		api.POST("/items/adjust", hb.AdjustQuantity)
		api.POST("/prune", hb.PruneCart)
	}

	wl := r.Group("/api/wishlist")
	{
		wl.GET("", hb.GetWishlist)
		wl.POST("/toggle", hb.ToggleWishlist)
	}
}

// RegisterEngagementRoutes registers recommendations, rewards and
// promotion endpoints.
func RegisterEngagementRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/recommendations", hb.GetRecommendations)
		api.GET("/rewards", hb.GetRewards)
		api.POST("/rewards/redeem", hb.RedeemPoints)
		api.GET("/promotions", hb.ListPromotions)
		api.POST("/promotions/:id/reset", hb.ResetPromotion)
		api.POST("/checkout/payment-intent", hb.CreatePaymentIntent)
	}
}

// RegisterHealthRoute exposes a liveness endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes wires CORS and every route group onto the engine.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterEngagementRoutes(r, hb)
	RegisterHealthRoute(r)
}
