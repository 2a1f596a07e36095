// Package money formats monetary values the way the store's customers read
// them: Brazilian Real with pt-BR separators.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// BRL renders a value as "R$ 1.234,56": always two fraction digits,
// comma decimal separator, dot thousands separator.
func BRL(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return printer.Sprintf("R$ %v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
