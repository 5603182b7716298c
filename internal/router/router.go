package router

import (
	"github.com/Kalpana12-cmd/amazon/config"
	"github.com/Kalpana12-cmd/amazon/internal/app/controller"
	"github.com/Kalpana12-cmd/amazon/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	catalogController *controller.CatalogController
	cartController    *controller.CartController
	summaryController *controller.SummaryController
	config            *config.Config
}

func NewRouter(
	catalogController *controller.CatalogController,
	cartController *controller.CartController,
	summaryController *controller.SummaryController,
	cfg *config.Config,
) *Router {
	return &Router{
		catalogController: catalogController,
		cartController:    cartController,
		summaryController: summaryController,
		config:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Storefront cart API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", r.catalogController.ListProducts)
			products.POST("/refresh", r.catalogController.RefreshCatalog)
			products.GET("/:id", r.catalogController.GetProduct)
		}

		cart := v1.Group("/cart")
		{
			cart.GET("", r.cartController.GetCart)
			cart.POST("", r.cartController.AddToCart)
			cart.DELETE("", r.cartController.ClearCart)
			cart.PUT("/:productId", r.cartController.SetQuantity)
			cart.PUT("/:productId/delivery-option", r.cartController.SetDeliveryOption)
			cart.DELETE("/:productId", r.cartController.RemoveFromCart)
		}

		v1.GET("/order-summary", r.summaryController.GetOrderSummary)
		v1.GET("/delivery-options", r.summaryController.ListDeliveryOptions)
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With, accept, origin")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
