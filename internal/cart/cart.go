package cart

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/acaidecasa/storefront/internal/domain"
)

// Cart is one session's ordered list of line items. It is the single source
// of truth for item counts and totals; the order composer re-derives totals
// from the same snapshot, so the two can never drift.
//
// Mutations are guarded by a mutex because the HTTP layer serves requests
// concurrently. The submission flag is separate: it serializes order
// submissions without blocking cart reads.
type Cart struct {
	mu         sync.Mutex
	items      []domain.CartItem
	submitting atomic.Bool
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// UnitPrice computes the per-unit price for a product with the given topping
// selection: the promo price when present, the base price otherwise, plus
// the price diff of every selected option. Pure function; the result is
// snapshotted into the cart line at add-time and never recomputed.
func UnitPrice(p *domain.Product, selectedGroups []domain.SelectedGroupOptions) decimal.Decimal {
	unit := p.EffectiveBase()
	for _, g := range selectedGroups {
		for _, opt := range g.Options {
			unit = unit.Add(opt.PriceDiff)
		}
	}
	return unit
}

// AddItem appends a new line for the product and returns it. The line gets a
// fresh id and a unit-price snapshot. Quantities below 1 are floored to 1,
// matching the update policy; there are no error paths here, selection
// validation happens upstream against the catalog.
func (c *Cart) AddItem(p *domain.Product, quantity int, selectedGroups []domain.SelectedGroupOptions, notes string) domain.CartItem {
	if quantity < 1 {
		quantity = 1
	}

	item := domain.CartItem{
		ID:          uuid.NewString(),
		ProductID:   p.ID,
		ProductName: p.Name,
		UnitPrice:   UnitPrice(p, selectedGroups),
		Quantity:    quantity,
		Toppings:    selectedGroups,
		Notes:       notes,
	}

	c.mu.Lock()
	c.items = append(c.items, item)
	c.mu.Unlock()
	return item
}

// RemoveItem deletes the line with the given id. Removing an absent id is a
// no-op, so repeated removals are idempotent.
func (c *Cart) RemoveItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the line's quantity. Requests at or below zero are
// clamped to 1; a line only leaves the cart through an explicit RemoveItem.
// No-op when the id is absent.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		quantity = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]domain.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of lines, not the summed quantities.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// TotalItems sums the quantities of all lines.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for i := range c.items {
		total += c.items[i].Quantity
	}
	return total
}

// TotalValue sums unit price times quantity over all lines.
func (c *Cart) TotalValue() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for i := range c.items {
		total = total.Add(c.items[i].LineTotal())
	}
	return total
}

// BeginSubmission marks the cart as having a submission in flight. It
// returns false when one is already running; the caller must not proceed.
func (c *Cart) BeginSubmission() bool {
	return c.submitting.CompareAndSwap(false, true)
}

// EndSubmission clears the in-flight flag. Called on every exit path of a
// submission attempt.
func (c *Cart) EndSubmission() {
	c.submitting.Store(false)
}

// Submitting reports whether a submission is currently in flight.
func (c *Cart) Submitting() bool {
	return c.submitting.Load()
}
