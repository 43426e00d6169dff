package httpapi

import (
	"adornia-be/internal/logger"
	"adornia-be/internal/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestIDMiddleware())
	r.Use(logger.LoggingMiddleware())
	r.Use(middleware.RateLimitMiddleware())
	r.Use(h.SessionMiddleware())

	api := r.Group("/api")
	{
		api.GET("/products", h.ListProducts)
		api.GET("/products/search", h.SearchProducts)
		api.GET("/products/featured", h.FeaturedProducts)
		api.GET("/products/new", h.NewArrivals)
		api.GET("/products/:slug", h.GetProduct)

		api.GET("/cart", h.GetCart)
		api.POST("/cart/items", h.AddCartItem)
		api.PATCH("/cart/items/:key", h.UpdateCartItem)
		api.DELETE("/cart/items/:key", h.RemoveCartItem)
		api.DELETE("/cart", h.ClearCart)

		api.GET("/wishlist", h.GetWishlist)
		api.POST("/wishlist/items", h.AddWishlistItem)
		api.POST("/wishlist/toggle", h.ToggleWishlistItem)
		api.DELETE("/wishlist/items/:id", h.RemoveWishlistItem)
		api.DELETE("/wishlist", h.ClearWishlist)

		api.GET("/delivery-options", h.DeliveryOptions)
		api.GET("/checkout/contact", h.SavedContact)
		api.POST("/checkout", h.StartCheckout)
		api.POST("/checkout/validate-stock", h.ValidateStock)
		api.POST("/checkout/bank-transfer", h.BankTransfer)
		api.GET("/checkout/completed", h.CompletedOrder)

		api.POST("/verify-payment", h.VerifyPayment)
		api.POST("/send-email", h.SendEmail)
		api.POST("/send-consultation-email", h.SendConsultationEmail)
		api.POST("/subscribe", h.Subscribe)
	}

	return r
}
