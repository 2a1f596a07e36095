package catalog

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"

	"github.com/acaidecasa/storefront/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Category is a display grouping for the menu
type Category struct {
	ID    domain.CategoryID `json:"id"`
	Label string            `json:"label"`
}

// Catalog is the immutable set of purchasable products. It is loaded once at
// process start and never mutated afterwards.
type Catalog struct {
	categories []Category
	products   []domain.Product
	byID       map[string]*domain.Product
}

// New builds a catalog from static data, validating it first.
func New(categories []Category, products []domain.Product) (*Catalog, error) {
	c := &Catalog{
		categories: categories,
		products:   products,
		byID:       make(map[string]*domain.Product, len(products)),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	for i := range c.products {
		c.byID[c.products[i].ID] = &c.products[i]
	}
	return c, nil
}

// LoadFile reads a catalog from a JSON file, for stores that override the
// embedded default menu.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var doc struct {
		Categories []Category       `json:"categories"`
		Products   []domain.Product `json:"products"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}
	return New(doc.Categories, doc.Products)
}

// Categories returns the catalog's display categories in menu order.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// Products returns all products in menu order.
func (c *Catalog) Products() []domain.Product {
	return c.products
}

// ProductByID looks up a product. The returned pointer must be treated as
// read-only.
func (c *Catalog) ProductByID(id string) (*domain.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) validate() error {
	seenProducts := make(map[string]bool, len(c.products))
	for i := range c.products {
		p := &c.products[i]
		if p.ID == "" {
			return fmt.Errorf("product at position %d has empty id", i)
		}
		if seenProducts[p.ID] {
			return fmt.Errorf("duplicate product id %q", p.ID)
		}
		seenProducts[p.ID] = true

		if !p.CategoryID.IsValid() {
			return fmt.Errorf("product %q: unknown category %q", p.ID, p.CategoryID)
		}
		if !p.Price.IsPositive() {
			return fmt.Errorf("product %q: price must be positive", p.ID)
		}
		if p.PromoPrice != nil && p.PromoPrice.GreaterThanOrEqual(p.Price) {
			return fmt.Errorf("product %q: promo price must be below base price", p.ID)
		}

		seenGroups := make(map[string]bool, len(p.ToppingGroups))
		for gi := range p.ToppingGroups {
			g := &p.ToppingGroups[gi]
			if g.ID == "" {
				return fmt.Errorf("product %q: topping group at position %d has empty id", p.ID, gi)
			}
			if seenGroups[g.ID] {
				return fmt.Errorf("product %q: duplicate topping group id %q", p.ID, g.ID)
			}
			seenGroups[g.ID] = true

			if g.Min < 0 || g.Max < g.Min {
				return fmt.Errorf("product %q: group %q has invalid bounds [%d, %d]", p.ID, g.ID, g.Min, g.Max)
			}
			if g.Max > len(g.Options) {
				return fmt.Errorf("product %q: group %q allows %d selections but has %d options", p.ID, g.ID, g.Max, len(g.Options))
			}

			seenOptions := make(map[string]bool, len(g.Options))
			for _, opt := range g.Options {
				if opt.ID == "" {
					return fmt.Errorf("product %q: group %q has an option with empty id", p.ID, g.ID)
				}
				if seenOptions[opt.ID] {
					return fmt.Errorf("product %q: group %q: duplicate option id %q", p.ID, g.ID, opt.ID)
				}
				seenOptions[opt.ID] = true
			}
		}
	}
	return nil
}

// SelectionInput is a raw topping choice as submitted by a client: option
// ids keyed by their group id.
type SelectionInput struct {
	GroupID   string
	OptionIDs []string
}

// ResolveSelection resolves raw option ids against a product's topping
// groups and enforces each group's [min, max] selection bounds. Every group
// the product declares appears in the result, in catalog order, with its
// chosen options (possibly none). Unknown groups, unknown options, duplicate
// picks and out-of-bounds counts are rejected.
func (c *Catalog) ResolveSelection(p *domain.Product, inputs []SelectionInput) ([]domain.SelectedGroupOptions, error) {
	byGroup := make(map[string][]string, len(inputs))
	for _, in := range inputs {
		if _, dup := byGroup[in.GroupID]; dup {
			return nil, fmt.Errorf("group %q selected twice", in.GroupID)
		}
		byGroup[in.GroupID] = in.OptionIDs
	}

	selected := make([]domain.SelectedGroupOptions, 0, len(p.ToppingGroups))
	for gi := range p.ToppingGroups {
		g := &p.ToppingGroups[gi]
		optionIDs := byGroup[g.ID]
		delete(byGroup, g.ID)

		if len(optionIDs) < g.Min || len(optionIDs) > g.Max {
			return nil, fmt.Errorf("group %q requires between %d and %d selections, got %d", g.Name, g.Min, g.Max, len(optionIDs))
		}

		options := make([]domain.ToppingOption, 0, len(optionIDs))
		seen := make(map[string]bool, len(optionIDs))
		for _, id := range optionIDs {
			if seen[id] {
				return nil, fmt.Errorf("group %q: option %q selected twice", g.Name, id)
			}
			seen[id] = true
			opt, ok := findOption(g, id)
			if !ok {
				return nil, fmt.Errorf("group %q has no option %q", g.Name, id)
			}
			options = append(options, opt)
		}

		selected = append(selected, domain.SelectedGroupOptions{
			GroupID:   g.ID,
			GroupName: g.Name,
			Options:   options,
		})
	}

	for groupID := range byGroup {
		return nil, fmt.Errorf("product %q has no topping group %q", p.ID, groupID)
	}
	return selected, nil
}

func findOption(g *domain.ToppingGroup, id string) (domain.ToppingOption, bool) {
	for _, opt := range g.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return domain.ToppingOption{}, false
}

func price(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func promo(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}
