package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acaidecasa/storefront/internal/domain"
)

func productWithPrice(price string) *domain.Product {
	return &domain.Product{
		ID:         "copo-300",
		Name:       "Copo Açaí 300ml",
		CategoryID: domain.CategoryAcaiTradicional,
		Price:      decimal.RequireFromString(price),
	}
}

func productWithPromo(price, promoPrice string) *domain.Product {
	promo := decimal.RequireFromString(promoPrice)
	p := productWithPrice(price)
	p.ID = "combo-500-2x"
	p.Name = "2 Copos Açaí 500ml"
	p.PromoPrice = &promo
	return p
}

func selection(groupName string, diffs ...string) []domain.SelectedGroupOptions {
	options := make([]domain.ToppingOption, len(diffs))
	for i, d := range diffs {
		options[i] = domain.ToppingOption{
			ID:        "opt",
			Name:      "Opção",
			PriceDiff: decimal.RequireFromString(d),
		}
	}
	return []domain.SelectedGroupOptions{{
		GroupID:   "grupo",
		GroupName: groupName,
		Options:   options,
	}}
}

func TestUnitPrice_BasePriceOnly(t *testing.T) {
	p := productWithPrice("19.90")

	unit := UnitPrice(p, nil)

	assert.True(t, unit.Equal(decimal.RequireFromString("19.90")), "got %s", unit)
}

func TestUnitPrice_PromoPriceWins(t *testing.T) {
	p := productWithPromo("43.80", "22.90")

	unit := UnitPrice(p, nil)

	assert.True(t, unit.Equal(decimal.RequireFromString("22.90")), "got %s", unit)
}

func TestUnitPrice_SumsOptionDiffsAcrossGroups(t *testing.T) {
	p := productWithPrice("19.90")
	groups := append(selection("Coberturas", "1.50", "0"), selection("Frutas", "2.00")...)

	unit := UnitPrice(p, groups)

	assert.True(t, unit.Equal(decimal.RequireFromString("23.40")), "got %s", unit)
}

func TestUnitPrice_MissingDiffTreatedAsZero(t *testing.T) {
	p := productWithPromo("43.80", "22.90")
	groups := []domain.SelectedGroupOptions{{
		GroupID:   "frutas",
		GroupName: "Frutas",
		Options:   []domain.ToppingOption{{ID: "fru-banana", Name: "Banana"}},
	}}

	unit := UnitPrice(p, groups)

	assert.True(t, unit.Equal(decimal.RequireFromString("22.90")), "got %s", unit)
}

func TestAddItem_SnapshotsPriceAtAddTime(t *testing.T) {
	c := New()
	p := productWithPrice("19.90")

	item := c.AddItem(p, 1, nil, "")

	// A later catalog price change must not touch the stored line.
	p.Price = decimal.RequireFromString("99.90")

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
	assert.True(t, items[0].UnitPrice.Equal(decimal.RequireFromString("19.90")))
	assert.Equal(t, p.ID, items[0].ProductID)
	assert.Equal(t, p.Name, items[0].ProductName)
}

func TestAddItem_AssignsUniqueIDs(t *testing.T) {
	c := New()
	p := productWithPrice("19.90")

	first := c.AddItem(p, 1, nil, "")
	second := c.AddItem(p, 1, nil, "")

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, c.Len())
}

func TestAddItem_FloorsQuantityToOne(t *testing.T) {
	c := New()

	item := c.AddItem(productWithPrice("19.90"), 0, nil, "")

	assert.Equal(t, 1, item.Quantity)
}

func TestTotals_SingleItemNoToppings(t *testing.T) {
	c := New()
	c.AddItem(productWithPrice("19.90"), 1, selection("Coberturas"), "")

	assert.Equal(t, 1, c.TotalItems())
	assert.True(t, c.TotalValue().Equal(decimal.RequireFromString("19.90")), "got %s", c.TotalValue())
}

func TestTotals_PromoPriceTimesQuantity(t *testing.T) {
	c := New()
	c.AddItem(productWithPromo("43.80", "22.90"), 2, selection("Frutas", "0"), "")

	assert.Equal(t, 2, c.TotalItems())
	assert.True(t, c.TotalValue().Equal(decimal.RequireFromString("45.80")), "got %s", c.TotalValue())
}

func TestTotalItems_SumsQuantitiesNotLines(t *testing.T) {
	c := New()
	c.AddItem(productWithPrice("19.90"), 3, nil, "")
	c.AddItem(productWithPrice("22.90"), 1, nil, "")

	assert.Equal(t, 4, c.TotalItems())
	assert.Equal(t, 2, c.Len())
	assert.GreaterOrEqual(t, c.TotalItems(), c.Len())
}

func TestUpdateQuantity_ClampsToOne(t *testing.T) {
	c := New()
	item := c.AddItem(productWithPrice("19.90"), 5, nil, "")

	c.UpdateQuantity(item.ID, 0)

	items := c.Items()
	require.Len(t, items, 1, "clamping must never remove the line")
	assert.Equal(t, 1, items[0].Quantity)

	c.UpdateQuantity(item.ID, -3)
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestUpdateQuantity_UnknownIDIsNoOp(t *testing.T) {
	c := New()
	c.AddItem(productWithPrice("19.90"), 2, nil, "")

	c.UpdateQuantity("missing-id", 5)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestRemoveItem_IsIdempotent(t *testing.T) {
	c := New()
	item := c.AddItem(productWithPrice("19.90"), 1, nil, "")

	c.RemoveItem(item.ID)
	assert.Equal(t, 0, c.Len())

	// Second removal with the same id is a no-op.
	c.RemoveItem(item.ID)
	assert.Equal(t, 0, c.Len())
}

func TestClear_EmptiesCart(t *testing.T) {
	c := New()
	c.AddItem(productWithPrice("19.90"), 2, nil, "")
	c.AddItem(productWithPrice("22.90"), 1, nil, "")

	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.TotalItems())
	assert.True(t, c.TotalValue().Equal(decimal.Zero))
}

func TestItems_ReturnsCopyInInsertionOrder(t *testing.T) {
	c := New()
	first := c.AddItem(productWithPrice("19.90"), 1, nil, "")
	second := c.AddItem(productWithPrice("22.90"), 1, nil, "")

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)

	// Mutating the snapshot must not leak into the cart.
	items[0].Quantity = 99
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestSubmissionGuard(t *testing.T) {
	c := New()

	require.True(t, c.BeginSubmission())
	assert.False(t, c.BeginSubmission(), "second begin must be rejected while in flight")
	assert.True(t, c.Submitting())

	c.EndSubmission()
	assert.False(t, c.Submitting())
	assert.True(t, c.BeginSubmission())
}
