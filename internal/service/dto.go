package service

import (
	"github.com/shopspring/decimal"

	"github.com/acaidecasa/storefront/internal/domain"
)

// CustomerInfo is the customer-entered delivery data for one submission.
// Name, Phone and Address are required at submission time; Complement is
// free-form.
type CustomerInfo struct {
	Name       string
	Phone      string
	Address    string
	Complement string
}

// OrderDraft pairs a cart snapshot's delivery fields with a payment choice.
// It exists only for the duration of one submission attempt.
type OrderDraft struct {
	Customer      CustomerInfo
	PaymentMethod domain.PaymentMethod
	// ChangeFor is the optional "troco para" amount for cash payments.
	ChangeFor *decimal.Decimal
}

// PixArtifact is the payment code produced for a PIX submission: the copy
// and paste payload plus its QR image as a data URL.
type PixArtifact struct {
	Payload string `json:"payload"`
	Image   string `json:"image"`
}

// SubmissionResult is what a successful submission hands back to the caller.
type SubmissionResult struct {
	Summary     string       `json:"summary"`
	Message     string       `json:"message"`
	WhatsAppURL string       `json:"whatsapp_url,omitempty"`
	Pix         *PixArtifact `json:"pix,omitempty"`
	// Notice carries non-fatal warnings, e.g. a missing messaging
	// destination.
	Notice string `json:"notice,omitempty"`
}
