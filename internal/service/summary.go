package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/acaidecasa/storefront/internal/domain"
	"github.com/acaidecasa/storefront/internal/money"
)

// BuildOrderSummary renders the human-readable order text sent to the store:
// a header naming the store, the non-empty customer fields, then the numbered
// item lines and the totals. Pure function of its inputs, so identical carts
// and fields produce byte-identical text; totals are re-derived from the
// items and therefore always agree with the cart's own accounting.
func BuildOrderSummary(items []domain.CartItem, customer CustomerInfo, storeName string) string {
	lines := []string{fmt.Sprintf("Novo pedido via site %s", storeName)}

	if customer.Name != "" {
		lines = append(lines, fmt.Sprintf("Cliente: %s", customer.Name))
	}
	if customer.Phone != "" {
		lines = append(lines, fmt.Sprintf("Telefone: %s", customer.Phone))
	}
	if customer.Address != "" {
		lines = append(lines, fmt.Sprintf("Endereço: %s", customer.Address))
	}
	if customer.Complement != "" {
		lines = append(lines, fmt.Sprintf("Complemento / Referência: %s", customer.Complement))
	}

	lines = append(lines, "", "Itens:")

	totalItems := 0
	totalValue := decimal.Zero
	for i := range items {
		lines = append(lines, formatItemLine(&items[i], i))
		totalItems += items[i].Quantity
		totalValue = totalValue.Add(items[i].LineTotal())
	}

	lines = append(lines, "",
		fmt.Sprintf("Total de itens: %d", totalItems),
		fmt.Sprintf("Valor total: %s", money.BRL(totalValue)),
	)

	return strings.Join(lines, "\n")
}

// formatItemLine renders one cart line as
// "1. Copo Açaí 300ml x2 — Frutas: Banana | Coberturas: Mel — Obs: sem granola".
// Empty segments are dropped, not rendered as blank separators.
func formatItemLine(item *domain.CartItem, index int) string {
	segments := []string{fmt.Sprintf("%d. %s x%d", index+1, item.ProductName, item.Quantity)}

	var groups []string
	for _, g := range item.Toppings {
		if len(g.Options) == 0 {
			continue
		}
		names := make([]string, len(g.Options))
		for i, opt := range g.Options {
			names[i] = opt.Name
		}
		groups = append(groups, fmt.Sprintf("%s: %s", g.GroupName, strings.Join(names, ", ")))
	}
	if len(groups) > 0 {
		segments = append(segments, strings.Join(groups, " | "))
	}

	if item.Notes != "" {
		segments = append(segments, fmt.Sprintf("Obs: %s", item.Notes))
	}

	return strings.Join(segments, " — ")
}
