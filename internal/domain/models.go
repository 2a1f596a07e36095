package domain

import (
	"github.com/shopspring/decimal"
)

// ToppingOption is one selectable add-on inside a topping group. PriceDiff
// is added to the unit price when the option is selected; a zero value means
// the option is free.
type ToppingOption struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	PriceDiff decimal.Decimal `json:"price_diff"`
}

// ToppingGroup is a named, bounded set of options a customer can pick from.
// Min and Max are inclusive selection-count bounds; Min of 0 makes the group
// optional.
type ToppingGroup struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Min         int             `json:"min"`
	Max         int             `json:"max"`
	Options     []ToppingOption `json:"options"`
}

// Product is one purchasable catalog entry. When PromoPrice is set it is the
// effective base for pricing and must be strictly below Price. Volume, badge
// and flag fields are presentation-only.
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	CategoryID    CategoryID       `json:"category_id"`
	Price         decimal.Decimal  `json:"price"`
	PromoPrice    *decimal.Decimal `json:"promo_price,omitempty"`
	VolumeML      int              `json:"volume_ml,omitempty"`
	IsZeroSugar   bool             `json:"is_zero_sugar,omitempty"`
	IsCombo       bool             `json:"is_combo,omitempty"`
	ImageURL      string           `json:"image_url,omitempty"`
	Badge         string           `json:"badge,omitempty"`
	ToppingGroups []ToppingGroup   `json:"topping_groups,omitempty"`
}

// EffectiveBase returns the promo price when present, the base price
// otherwise.
func (p *Product) EffectiveBase() decimal.Decimal {
	if p.PromoPrice != nil {
		return *p.PromoPrice
	}
	return p.Price
}

// SelectedGroupOptions pairs a topping group with the options chosen for one
// cart line. Options may be empty for optional groups.
type SelectedGroupOptions struct {
	GroupID   string          `json:"group_id"`
	GroupName string          `json:"group_name"`
	Options   []ToppingOption `json:"options"`
}

// CartItem is one cart line. ID, the product snapshot and UnitPrice are
// immutable after creation; only Quantity changes, via the cart operations.
// UnitPrice is captured at add-time and never recomputed, so later catalog
// changes do not affect lines already in the cart.
type CartItem struct {
	ID          string                 `json:"id"`
	ProductID   string                 `json:"product_id"`
	ProductName string                 `json:"product_name"`
	UnitPrice   decimal.Decimal        `json:"unit_price"`
	Quantity    int                    `json:"quantity"`
	Toppings    []SelectedGroupOptions `json:"toppings"`
	Notes       string                 `json:"notes,omitempty"`
}

// LineTotal returns UnitPrice multiplied by Quantity.
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
