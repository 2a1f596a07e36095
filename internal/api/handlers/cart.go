package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/acaidecasa/storefront/internal/api/middleware"
	"github.com/acaidecasa/storefront/internal/cart"
	"github.com/acaidecasa/storefront/internal/catalog"
	"github.com/acaidecasa/storefront/internal/domain"
)

// AddItemRequest represents the add-to-cart payload
type AddItemRequest struct {
	ProductID  string             `json:"product_id" binding:"required"`
	Quantity   int                `json:"quantity" binding:"required,min=1"`
	Selections []SelectionRequest `json:"selections"`
	Notes      string             `json:"notes"`
}

type SelectionRequest struct {
	GroupID   string   `json:"group_id" binding:"required"`
	OptionIDs []string `json:"option_ids"`
}

// UpdateQuantityRequest represents the quantity-change payload
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse represents the current cart state
type CartResponse struct {
	Items      []domain.CartItem `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalValue decimal.Decimal   `json:"total_value"`
}

func cartResponse(c *cart.Cart) CartResponse {
	return CartResponse{
		Items:      c.Items(),
		TotalItems: c.TotalItems(),
		TotalValue: c.TotalValue(),
	}
}

// HandleGetCart handles GET /v1/cart
func HandleGetCart(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.GetSessionID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "missing session"})
			return
		}
		c.JSON(http.StatusOK, cartResponse(carts.Get(sessionID)))
	}
}

// HandleAddItem handles POST /v1/cart/items
func HandleAddItem(cat *catalog.Catalog, carts *cart.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.GetSessionID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "missing session"})
			return
		}

		var req AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		product, ok := cat.ProductByID(req.ProductID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		// Topping bounds are enforced here, before a cart line exists.
		inputs := make([]catalog.SelectionInput, len(req.Selections))
		for i, sel := range req.Selections {
			inputs[i] = catalog.SelectionInput{GroupID: sel.GroupID, OptionIDs: sel.OptionIDs}
		}
		selected, err := cat.ResolveSelection(product, inputs)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		item := carts.Get(sessionID).AddItem(product, req.Quantity, selected, req.Notes)
		logger.Info("cart item added",
			zap.String("session_id", sessionID),
			zap.String("product_id", product.ID),
			zap.Int("quantity", item.Quantity),
		)

		c.JSON(http.StatusCreated, gin.H{
			"item": item,
			"cart": cartResponse(carts.Get(sessionID)),
		})
	}
}

// HandleUpdateQuantity handles PATCH /v1/cart/items/:id. Quantities at or
// below zero are floored to 1; an unknown id leaves the cart unchanged.
func HandleUpdateQuantity(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.GetSessionID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "missing session"})
			return
		}

		var req UpdateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		cartForSession := carts.Get(sessionID)
		cartForSession.UpdateQuantity(c.Param("id"), req.Quantity)
		c.JSON(http.StatusOK, cartResponse(cartForSession))
	}
}

// HandleRemoveItem handles DELETE /v1/cart/items/:id. Removing an absent id
// is a no-op, not an error.
func HandleRemoveItem(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.GetSessionID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "missing session"})
			return
		}

		cartForSession := carts.Get(sessionID)
		cartForSession.RemoveItem(c.Param("id"))
		c.JSON(http.StatusOK, cartResponse(cartForSession))
	}
}

// HandleClearCart handles DELETE /v1/cart
func HandleClearCart(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.GetSessionID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "missing session"})
			return
		}

		carts.Get(sessionID).Clear()
		c.Status(http.StatusNoContent)
	}
}
