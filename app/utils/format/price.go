package format

import (
	"strings"

	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

// Price renders "120 ج.م" style amounts; fractions get two places, whole numbers none.
func Price(amount decimal.Decimal, currency string) string {
	precision := 0
	if !amount.Equal(amount.Truncate(0)) {
		precision = 2
	}

	ac := accounting.Accounting{
		Symbol:    strings.TrimSpace(currency),
		Precision: precision,
		Thousand:  ",",
		Decimal:   ".",
		Format:    "%v %s",
	}
	if ac.Symbol == "" {
		ac.Format = "%v"
	}
	return strings.TrimSpace(ac.FormatMoneyDecimal(amount))
}

// Amount is Price without a currency symbol, as used in the inquiry message.
func Amount(amount decimal.Decimal) string {
	return Price(amount, "")
}
