package quote

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/mazradwan/onestop/pkg/onestop/dal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrInvalidProvince      = errors.New("province is not a valid code")
	ErrInvalidPaymentMethod = errors.New("payment method is not one of Full, Monthly, Down Pay")
	ErrInvalidYesNo         = errors.New("answer must be Y or N")
	ErrInvalidAmount        = errors.New("amount is not a number")
	ErrNegativeAmount       = errors.New("amount must not be negative")
	ErrInvalidVehicleCount  = errors.New("vehicle count must be a whole number greater than zero")
)

// Provinces are the province codes a policy can be written in.
var Provinces = []string{"ON", "QC", "NS", "NB", "MB", "BC", "PE", "SK", "AB", "NL"}

// PaymentMethods are the accepted payment methods, in prompt order.
var PaymentMethods = []dal.PaymentMethod{dal.PaymentFull, dal.PaymentMonthly, dal.PaymentDownPay}

// claimAmountPattern accepts digits with at most one decimal point, but not a bare point.
var claimAmountPattern = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)$`)

// titleCase capitalizes the first letter of every word and lowers the rest.
func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// ValidateProvince returns the upper-cased province code.
func ValidateProvince(s string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	for _, p := range Provinces {
		if code == p {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidProvince, s)
}

// ValidatePaymentMethod matches the title-cased answer against the payment methods.
func ValidatePaymentMethod(s string) (dal.PaymentMethod, error) {
	method := dal.PaymentMethod(titleCase(strings.TrimSpace(s)))
	for _, m := range PaymentMethods {
		if method == m {
			return method, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, s)
}

// ValidateYesNo returns true for Y and false for N, in either case.
func ValidateYesNo(s string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", ErrInvalidYesNo, s)
}

// ValidateClaimAmount accepts an unsigned decimal such as 12, 12.50, 12. or .5.
func ValidateClaimAmount(s string) (float64, error) {
	if !claimAmountPattern.MatchString(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return amount, nil
}

// ValidateVehicleCount returns the number of vehicles, which must be at least one.
func ValidateVehicleCount(s string) (int, error) {
	count, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || count < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidVehicleCount, s)
	}
	return count, nil
}

// ValidateDownPayment returns a finite, non-negative down payment.
func ValidateDownPayment(s string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if amount < 0 {
		return 0, fmt.Errorf("%w: %v", ErrNegativeAmount, amount)
	}
	return amount, nil
}
