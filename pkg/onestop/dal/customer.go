package dal

// PaymentMethod defines how a policy is paid
type PaymentMethod string

const (
	PaymentFull    PaymentMethod = "Full"
	PaymentMonthly PaymentMethod = "Monthly"
	PaymentDownPay PaymentMethod = "Down Pay"
)

// Claim defines a prior insurance claim shown on the receipt
type Claim struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// Coverage defines the optional per-vehicle coverages
type Coverage struct {
	ExtraLiability bool `json:"extra_liability"`
	Glass          bool `json:"glass"`
	Loaner         bool `json:"loaner"`
}

// Customer defines a customer and the policy choices collected for them
type Customer struct {
	FirstName     string        `json:"first_name"`
	LastName      string        `json:"last_name"`
	Address       string        `json:"address"`
	City          string        `json:"city"`
	Province      string        `json:"province"`
	PostalCode    string        `json:"postal_code"`
	Phone         string        `json:"phone"`
	VehicleCount  int           `json:"vehicle_count"`
	Coverage      Coverage      `json:"coverage"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	DownPayment   float64       `json:"down_payment,omitempty"`
	Claims        []Claim       `json:"claims,omitempty"`
}
