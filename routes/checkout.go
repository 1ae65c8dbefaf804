package routes

import (
	"storefront/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterCartRoutes registers all cart endpoints. Carts are keyed by the
// shopper id resolved by ShopperIDMiddleware.
func RegisterCartRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/cart")
	api.Use(middleware.OptionalAuthMiddleware(), middleware.ShopperIDMiddleware())
	{
		api.GET("", hb.Cart.GetCartHandler)
		api.POST("/services", hb.Cart.AddServiceHandler)
		api.POST("/products", hb.Cart.AddProductHandler)
		api.PATCH("/products/:id", hb.Cart.SetQuantityHandler)
		api.DELETE("/lines/:id", hb.Cart.RemoveLineHandler)
		api.DELETE("", hb.Cart.ClearCartHandler)
	}
}

// RegisterCheckoutRoutes registers the checkout wizard endpoints.
func RegisterCheckoutRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/checkout")
	api.Use(middleware.OptionalAuthMiddleware(), middleware.ShopperIDMiddleware())
	{
		api.POST("/session", hb.Checkout.OpenSessionHandler)         // Phase 1: open, entry step computed
		api.GET("/session", hb.Checkout.GetSessionHandler)           //
		api.PUT("/session/schedule", hb.Checkout.SelectScheduleHandler) // Phase 2: collect schedule
		api.PUT("/session/customer", hb.Checkout.UpdateCustomerHandler) // Phase 2: collect contact info
		api.POST("/session/next", hb.Checkout.NextHandler)
		api.POST("/session/back", hb.Checkout.BackHandler)
		api.POST("/session/reset", hb.Checkout.ResetHandler)
		api.POST("/session/submit", hb.Checkout.SubmitHandler) // Phase 3: confirm and submit
		api.DELETE("/session", hb.Checkout.CloseSessionHandler)
	}
}
