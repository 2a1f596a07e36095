package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/acaidecasa/storefront/internal/api/middleware"
	"github.com/acaidecasa/storefront/internal/cart"
	"github.com/acaidecasa/storefront/internal/domain"
	"github.com/acaidecasa/storefront/internal/service"
	apperrors "github.com/acaidecasa/storefront/pkg/errors"
)

// SubmitOrderRequest represents the order submission payload. Customer
// fields are validated by the order composer, not by binding, so the
// response carries the user-facing message instead of a binding error.
type SubmitOrderRequest struct {
	Customer      CustomerRequest  `json:"customer"`
	PaymentMethod string           `json:"payment_method" binding:"required"`
	ChangeFor     *decimal.Decimal `json:"change_for,omitempty"`
}

type CustomerRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Complement string `json:"complement"`
}

// HandleSubmitOrder handles POST /v1/orders
func HandleSubmitOrder(carts *cart.Manager, orders *service.OrderService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.GetSessionID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "missing session"})
			return
		}

		var req SubmitOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		draft := service.OrderDraft{
			Customer: service.CustomerInfo{
				Name:       req.Customer.Name,
				Phone:      req.Customer.Phone,
				Address:    req.Customer.Address,
				Complement: req.Customer.Complement,
			},
			PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
			ChangeFor:     req.ChangeFor,
		}

		result, err := orders.Submit(c.Request.Context(), sessionID, carts.Get(sessionID), draft)
		if err != nil {
			respondSubmissionError(c, err, logger)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func respondSubmissionError(c *gin.Context, err error, logger *zap.Logger) {
	var validationErr *apperrors.ValidationError
	var configErr *apperrors.ConfigurationError
	var externalErr *apperrors.ExternalCallError

	switch {
	case errors.Is(err, apperrors.ErrSubmissionInFlight):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Já existe um pedido sendo finalizado.",
			"code":  "in_flight",
		})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": validationErr.Message,
			"code":  "validation",
		})
	case errors.As(err, &configErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": configErr.Message,
			"code":  "configuration",
		})
	case errors.As(err, &externalErr):
		// Internal detail stays in the logs; the client gets one generic
		// message.
		logger.Error("Order submission failed on external call", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{
			"error": externalErr.Message,
			"code":  "external",
		})
	default:
		logger.Error("Order submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
