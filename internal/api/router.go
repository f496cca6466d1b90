package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SadiqNaizam/MLO-a774-fa95/internal/api/handlers"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/api/middleware"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/catalog"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/config"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/repository"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, store *catalog.Store, repos *repository.Repositories, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(customRecovery(logger))
	router.Use(loggingMiddleware(logger))

	// Root: friendly response so GET / returns 200 instead of 404
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Storefront API",
			"endpoints": []string{
				"GET /health",
				"GET /v1/home",
				"GET /v1/catalog/products",
				"GET /v1/catalog/filters",
				"GET /v1/products/:id",
				"PUT /v1/products/:id/selection",
				"POST /v1/products/:id/add-to-cart",
				"GET /v1/cart",
				"PATCH /v1/cart/items",
				"DELETE /v1/cart/items",
				"PUT /v1/cart/instructions",
				"POST /v1/checkout",
				"GET /v1/checkout",
				"POST /v1/checkout/shipping",
				"POST /v1/checkout/shipping-method",
				"POST /v1/checkout/back",
				"POST /v1/checkout/payment",
				"GET /v1/orders/:id",
			},
		})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes: every route is scoped to an anonymous session
	v1 := router.Group("/v1")
	v1.Use(middleware.SessionMiddleware(repos, logger))
	{
		// Catalog (read only, session still resolved for the echoed header)
		v1.GET("/home", handlers.HandleHome(cfg, store, logger))
		v1.GET("/catalog/products", handlers.HandleListProducts(cfg, store, logger))
		v1.GET("/catalog/filters", handlers.HandleGetFilters(cfg, store, logger))
		v1.GET("/products/:id", handlers.HandleGetProduct(cfg, store, logger))

		// Selection and cart
		v1.PUT("/products/:id/selection", handlers.HandleUpdateSelection(store, logger))
		v1.POST("/products/:id/add-to-cart", handlers.HandleAddToCart(store, logger))
		v1.GET("/cart", handlers.HandleGetCart(store, logger))
		v1.PATCH("/cart/items", handlers.HandleUpdateQuantity(store, logger))
		v1.DELETE("/cart/items", handlers.HandleRemoveItem(store, logger))
		v1.PUT("/cart/instructions", handlers.HandleSetInstructions(store, logger))

		// Checkout flow
		v1.POST("/checkout", handlers.HandleBeginCheckout(cfg, repos, logger))
		v1.GET("/checkout", handlers.HandleGetCheckout(cfg, repos, logger))
		v1.POST("/checkout/shipping", handlers.HandleSubmitShipping(cfg, repos, logger))
		v1.POST("/checkout/shipping-method", handlers.HandleSetShippingMethod(cfg, repos, logger))
		v1.POST("/checkout/back", handlers.HandleReturnToShipping(cfg, repos, logger))
		v1.POST("/checkout/payment", handlers.HandleSubmitOrder(cfg, repos, logger))

		// Orders
		v1.GET("/orders/:id", handlers.HandleGetOrder(cfg, repos, logger))
	}

	return router
}

// customRecovery is a custom recovery middleware that logs panics
func customRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"details": fmt.Sprintf("%v", recovered),
		})
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
