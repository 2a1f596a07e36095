// Package events carries the in-process order audit trail. Successful
// submissions are published on an event bus; subscribers stay decoupled from
// the submission flow.
package events

import (
	"github.com/asaskevich/EventBus"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/acaidecasa/storefront/internal/domain"
)

// TopicOrderSubmitted fires once per successfully composed order.
const TopicOrderSubmitted = "order.submitted"

// OrderSubmitted is the audit payload for one completed submission.
type OrderSubmitted struct {
	SessionID     string
	PaymentMethod domain.PaymentMethod
	ItemCount     int
	Total         decimal.Decimal
	TransactionID string
	Dispatched    bool
}

// RegisterAuditLogger subscribes a structured-log audit record to order
// submissions.
func RegisterAuditLogger(bus EventBus.Bus, logger *zap.Logger) error {
	return bus.Subscribe(TopicOrderSubmitted, func(evt OrderSubmitted) {
		logger.Info("order submitted",
			zap.String("session_id", evt.SessionID),
			zap.String("payment_method", string(evt.PaymentMethod)),
			zap.Int("item_count", evt.ItemCount),
			zap.String("total", evt.Total.StringFixed(2)),
			zap.String("transaction_id", evt.TransactionID),
			zap.Bool("dispatched", evt.Dispatched),
		)
	})
}
