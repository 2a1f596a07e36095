package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acaidecasa/storefront/internal/catalog"
)

// HandleGetCatalog handles GET /v1/catalog
func HandleGetCatalog(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"categories": cat.Categories(),
			"products":   cat.Products(),
		})
	}
}
