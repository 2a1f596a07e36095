package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBRL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"19.90", "R$ 19,90"},
		{"19.9", "R$ 19,90"},
		{"45.80", "R$ 45,80"},
		{"0", "R$ 0,00"},
		{"7", "R$ 7,00"},
		{"1234.5", "R$ 1.234,50"},
	}

	for _, tc := range cases {
		got := BRL(decimal.RequireFromString(tc.in))
		assert.Equal(t, tc.want, got, "input %s", tc.in)
	}
}
