// Package money formats currency amounts for receipts and charts.
package money

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Format renders an amount as dollars with a thousands separator and two decimals.
// Negative amounts keep the sign after the dollar sign, e.g. $-1,234.50.
func Format(amount float64) string {
	return FormatDecimal(decimal.NewFromFloat(amount))
}

// FormatDecimal rounds half away from zero to cents before formatting.
// Amounts of any magnitude are grouped exactly.
func FormatDecimal(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, cents, _ := strings.Cut(fixed, ".")

	dollars, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return "$" + sign + fixed
	}
	return "$" + sign + humanize.BigComma(dollars) + "." + cents
}

// Right right-aligns s in a field of the given width.
func Right(s string, width int) string {
	return fmt.Sprintf("%*s", width, s)
}
