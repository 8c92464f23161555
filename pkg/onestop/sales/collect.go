// Package sales collects a year of monthly sales and draws them as a bar chart.
package sales

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mazradwan/onestop/pkg/onestop/dal"
	"github.com/mazradwan/onestop/pkg/onestop/prompt"
)

var (
	ErrNotNumber = errors.New("sales amount is not a number")
	ErrNegative  = errors.New("sales amount cannot be negative")
)

// ValidateAmount parses a finite, non-negative sales amount.
func ValidateAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotNumber, s)
	}
	if amount < 0 {
		return 0, fmt.Errorf("%w: %v", ErrNegative, amount)
	}
	return amount, nil
}

func invalidAmount(err error) string {
	if errors.Is(err, ErrNegative) {
		return "Invalid input: Sales amount cannot be negative."
	}
	return "Invalid input: please enter a number such as 1250.50."
}

// Collect asks for the sales of every month in order, re-asking a month until
// its amount is valid.
func Collect(c *prompt.Console) (dal.MonthlySales, error) {
	sales := make(dal.MonthlySales, 0, len(dal.Months))
	for _, month := range dal.Months {
		amount, err := prompt.Ask(c, prompt.Field[float64]{
			Name:    "sales for " + month,
			Prompt:  fmt.Sprintf("Enter total sales for %s (if not applicable, enter 0): ", month),
			Parse:   ValidateAmount,
			Invalid: invalidAmount,
		})
		if err != nil {
			return nil, err
		}
		sales = append(sales, dal.MonthlySale{Month: month, Amount: amount})
	}
	return sales, nil
}
