package dal

// Months are the fixed labels sales are collected for, in order
var Months = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MonthlySale defines the total sales recorded for one month
type MonthlySale struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// MonthlySales is the ordered year of sales, one entry per month
type MonthlySales []MonthlySale

// Max returns the largest amount, or zero for an empty year
func (s MonthlySales) Max() float64 {
	var highest float64
	for _, sale := range s {
		if sale.Amount > highest {
			highest = sale.Amount
		}
	}
	return highest
}
