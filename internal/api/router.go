package api

import (
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/acaidecasa/storefront/internal/api/handlers"
	"github.com/acaidecasa/storefront/internal/api/middleware"
	"github.com/acaidecasa/storefront/internal/cart"
	"github.com/acaidecasa/storefront/internal/catalog"
	"github.com/acaidecasa/storefront/internal/config"
	"github.com/acaidecasa/storefront/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(
	cfg *config.Config,
	cat *catalog.Catalog,
	carts *cart.Manager,
	orders *service.OrderService,
	sessionStore sessions.Store,
	logger *zap.Logger,
) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	v1.Use(middleware.Session(sessionStore, logger))
	{
		v1.GET("/catalog", handlers.HandleGetCatalog(cat))

		v1.GET("/cart", handlers.HandleGetCart(carts))
		v1.POST("/cart/items", handlers.HandleAddItem(cat, carts, logger))
		v1.PATCH("/cart/items/:id", handlers.HandleUpdateQuantity(carts))
		v1.DELETE("/cart/items/:id", handlers.HandleRemoveItem(carts))
		v1.DELETE("/cart", handlers.HandleClearCart(carts))

		v1.POST("/orders", handlers.HandleSubmitOrder(carts, orders, logger))
	}

	return router
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
