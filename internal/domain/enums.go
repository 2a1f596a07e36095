package domain

// CategoryID identifies one of the fixed catalog categories
type CategoryID string

const (
	CategoryPromoPague1Leve2 CategoryID = "PROMO_PAGUE_1_LEVE_2"
	CategoryZeroAcucar       CategoryID = "ZERO_ACUCAR"
	CategoryAcaiTradicional  CategoryID = "ACAI_TRADICIONAL"
	CategoryEspeciais        CategoryID = "ESPECIAIS"
)

// IsValid checks if the category is part of the closed set
func (c CategoryID) IsValid() bool {
	switch c {
	case CategoryPromoPague1Leve2,
		CategoryZeroAcucar,
		CategoryAcaiTradicional,
		CategoryEspeciais:
		return true
	default:
		return false
	}
}

// PaymentMethod is how the customer chose to pay
type PaymentMethod string

const (
	PaymentPix  PaymentMethod = "pix"
	PaymentCash PaymentMethod = "cash"
)

// IsValid checks if the payment method is supported
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentPix, PaymentCash:
		return true
	default:
		return false
	}
}
