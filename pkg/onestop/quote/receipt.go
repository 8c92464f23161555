package quote

import (
	"fmt"
	"strings"
	"time"

	"github.com/mazradwan/onestop/pkg/onestop/dal"
	"github.com/mazradwan/onestop/pkg/onestop/money"
	"github.com/shopspring/decimal"
)

// Banner is printed above every receipt.
const Banner = "                          --- One Stop Insurance ---"

const (
	dateLayout   = "January 02, 2006"
	headerIndent = 57
	costIndent   = 51
	costLabel    = 20
	amountWidth  = 9
	ruleWidth    = 80

	claimNumWidth    = 10
	claimDateWidth   = 20
	claimAmountWidth = 15
)

var (
	rule       = strings.Repeat("-", ruleWidth)
	costRule   = strings.Repeat("-", 29)
	indentHead = strings.Repeat(" ", headerIndent)
	indentCost = strings.Repeat(" ", costIndent)
)

// Receipt is everything printed for one issued policy.
type Receipt struct {
	PolicyNumber int
	Date         time.Time
	Customer     dal.Customer
	Quote        Quote
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func writeCost(sb *strings.Builder, label string, amount decimal.Decimal) {
	fmt.Fprintf(sb, "%s%-*s%s\n", indentCost, costLabel, label, money.Right(money.FormatDecimal(amount), amountWidth))
}

// String renders the receipt as fixed-layout text.
func (r Receipt) String() string {
	var sb strings.Builder
	c := r.Customer
	q := r.Quote

	sb.WriteString(strings.Repeat(" ", 19) + "\n\n\n")
	fmt.Fprintf(&sb, "%sDate: %s\n", indentHead, r.Date.Format(dateLayout))
	fmt.Fprintf(&sb, "%sInvoice #: %d\n\n", indentHead, r.PolicyNumber)

	fmt.Fprintf(&sb, "Customer:\n\n%s %s\n", titleCase(c.FirstName), titleCase(c.LastName))
	fmt.Fprintf(&sb, "%s\n%s, %s, %s\n", titleCase(c.Address), titleCase(c.City), strings.ToUpper(c.Province), c.PostalCode)
	fmt.Fprintf(&sb, "%s\n", c.Phone)
	sb.WriteString(rule + "\n")
	sb.WriteString("                            Insurance Policy Receipt\n")
	sb.WriteString(rule + "\n")

	fmt.Fprintf(&sb, "Number of Vehicles: %d\n", c.VehicleCount)
	fmt.Fprintf(&sb, "Optional Extra Liability: %s\n", yesNo(c.Coverage.ExtraLiability))
	fmt.Fprintf(&sb, "Optional Glass Coverage: %s\n", yesNo(c.Coverage.Glass))
	fmt.Fprintf(&sb, "Optional Loaner Coverage: %s\n\n", yesNo(c.Coverage.Loaner))

	writeCost(&sb, "Basic Premium:", q.BasicPremium)
	if c.VehicleCount > 1 {
		writeCost(&sb, "Additional Car(s):", q.AdditionalVehicles)
	}
	if c.Coverage.ExtraLiability {
		writeCost(&sb, "Extra Liability:", q.ExtraLiability)
	}
	if c.Coverage.Glass {
		writeCost(&sb, "Glass Coverage:", q.GlassCoverage)
	}
	if c.Coverage.Loaner {
		writeCost(&sb, "Loaner Coverage:", q.LoanerCoverage)
	}
	writeCost(&sb, "HST:", q.HST)
	sb.WriteString(indentCost + costRule + "\n")
	writeCost(&sb, "Total Amount:", q.Total)
	sb.WriteString("\n")

	r.writePayment(&sb)
	r.writeClaims(&sb)
	sb.WriteString("Thank You for using One Stop Insurance\n")
	return sb.String()
}

func (r Receipt) writePayment(sb *strings.Builder) {
	q := r.Quote
	if !q.Monthly {
		sb.WriteString("Payment Option: Full\n\n")
		return
	}

	if q.DownPayment.IsPositive() && r.Customer.PaymentMethod == dal.PaymentDownPay {
		sb.WriteString("Payment Option: Monthly with down payment\n\n")
	} else {
		sb.WriteString("Payment Option: Monthly\n\n")
	}
	fmt.Fprintf(sb, "Processing Fee:   %s\n", money.FormatDecimal(q.ProcessingFee))
	if q.DownPayment.IsPositive() {
		fmt.Fprintf(sb, "Down Payment:    %s\n", money.FormatDecimal(q.DownPayment))
	}
	fmt.Fprintf(sb, "Monthly Payment: %s\n\n", money.FormatDecimal(q.MonthlyPayment))
}

func (r Receipt) writeClaims(sb *strings.Builder) {
	sb.WriteString("Claim History\n")
	sb.WriteString(rule + "\n")
	fmt.Fprintf(sb, "%-*s %-*s %*s\n", claimNumWidth, "Claim #", claimDateWidth, "Claim Date", claimAmountWidth, "Amount")
	sb.WriteString(rule + "\n")
	for i, claim := range r.Customer.Claims {
		number := fmt.Sprintf("%d.%s", i+1, strings.Repeat(" ", claimNumWidth-2))
		fmt.Fprintf(sb, "%s %-*s %*s\n", number, claimDateWidth, claim.Date, claimAmountWidth, money.Format(claim.Amount))
	}
	sb.WriteString(rule + "\n")
}
