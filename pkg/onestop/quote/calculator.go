// Package quote prices insurance policies, formats their receipts and runs the
// interactive quoting session.
package quote

import (
	"github.com/mazradwan/onestop/pkg/onestop/config"
	"github.com/mazradwan/onestop/pkg/onestop/dal"
	"github.com/shopspring/decimal"
)

// Calculator prices policies from a fixed set of rates.
type Calculator struct {
	basicPremium   decimal.Decimal
	additionalRate decimal.Decimal
	extraLiability decimal.Decimal
	glassCoverage  decimal.Decimal
	loanerCar      decimal.Decimal
	hst            decimal.Decimal
	processingFee  decimal.Decimal
	installments   decimal.Decimal
}

// NewCalculator returns a Calculator for the given rates.
func NewCalculator(r config.Rates) *Calculator {
	one := decimal.NewFromInt(1)
	return &Calculator{
		basicPremium:   decimal.NewFromFloat(r.BasicPremium),
		additionalRate: one.Sub(decimal.NewFromFloat(r.AdditionalDiscount)),
		extraLiability: decimal.NewFromFloat(r.ExtraLiability),
		glassCoverage:  decimal.NewFromFloat(r.GlassCoverage),
		loanerCar:      decimal.NewFromFloat(r.LoanerCar),
		hst:            decimal.NewFromFloat(r.HST),
		processingFee:  decimal.NewFromFloat(r.ProcessingFee),
		installments:   decimal.NewFromInt(int64(r.Installments)),
	}
}

// Quote is the priced breakdown of one policy. Only the option lines that
// apply are non-zero.
type Quote struct {
	BasicPremium       decimal.Decimal
	AdditionalVehicles decimal.Decimal
	ExtraLiability     decimal.Decimal
	GlassCoverage      decimal.Decimal
	LoanerCoverage     decimal.Decimal
	Premium            decimal.Decimal
	HST                decimal.Decimal
	Total              decimal.Decimal
	ProcessingFee      decimal.Decimal
	DownPayment        decimal.Decimal
	// Monthly is set for every payment method except Full.
	Monthly        bool
	MonthlyPayment decimal.Decimal
}

// AdditionalVehicles is the discounted basic premium for every vehicle after the first.
func (c *Calculator) AdditionalVehicles(vehicles int) decimal.Decimal {
	if vehicles <= 1 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(vehicles - 1)).Mul(c.basicPremium).Mul(c.additionalRate)
}

func (c *Calculator) perVehicle(selected bool, fee decimal.Decimal, vehicles int) decimal.Decimal {
	if !selected {
		return decimal.Zero
	}
	return fee.Mul(decimal.NewFromInt(int64(vehicles)))
}

// Premium is the pre-tax cost of insuring the vehicles with the selected coverages.
func (c *Calculator) Premium(vehicles int, cov dal.Coverage) decimal.Decimal {
	return c.basicPremium.
		Add(c.AdditionalVehicles(vehicles)).
		Add(c.perVehicle(cov.ExtraLiability, c.extraLiability, vehicles)).
		Add(c.perVehicle(cov.Glass, c.glassCoverage, vehicles)).
		Add(c.perVehicle(cov.Loaner, c.loanerCar, vehicles))
}

// TotalCost returns premium plus HST, less a positive down payment, and the HST.
// The total is not clamped and goes negative when the down payment exceeds it.
func (c *Calculator) TotalCost(premium, downPayment decimal.Decimal) (total, hst decimal.Decimal) {
	hst = premium.Mul(c.hst)
	total = premium.Add(hst)
	if downPayment.IsPositive() {
		total = total.Sub(downPayment)
	}
	return total, hst
}

// MonthlyPayment spreads the total plus the processing fee, less a positive
// down payment, over the installments.
func (c *Calculator) MonthlyPayment(total, downPayment decimal.Decimal) decimal.Decimal {
	adjusted := total.Add(c.processingFee)
	if downPayment.IsPositive() {
		adjusted = adjusted.Sub(downPayment)
	}
	return adjusted.Div(c.installments)
}

// Quote prices the customer's policy.
func (c *Calculator) Quote(cust dal.Customer) Quote {
	vehicles := cust.VehicleCount
	down := decimal.Zero
	if cust.PaymentMethod == dal.PaymentDownPay {
		down = decimal.NewFromFloat(cust.DownPayment)
	}

	q := Quote{
		BasicPremium:       c.basicPremium,
		AdditionalVehicles: c.AdditionalVehicles(vehicles),
		ExtraLiability:     c.perVehicle(cust.Coverage.ExtraLiability, c.extraLiability, vehicles),
		GlassCoverage:      c.perVehicle(cust.Coverage.Glass, c.glassCoverage, vehicles),
		LoanerCoverage:     c.perVehicle(cust.Coverage.Loaner, c.loanerCar, vehicles),
		Premium:            c.Premium(vehicles, cust.Coverage),
		ProcessingFee:      c.processingFee,
		DownPayment:        down,
	}
	q.Total, q.HST = c.TotalCost(q.Premium, down)
	if cust.PaymentMethod != dal.PaymentFull {
		q.Monthly = true
		q.MonthlyPayment = c.MonthlyPayment(q.Total, down)
	}
	return q
}
