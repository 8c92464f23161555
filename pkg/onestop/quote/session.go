package quote

import (
	"fmt"
	"time"

	"github.com/mazradwan/onestop/pkg/onestop/dal"
	"github.com/mazradwan/onestop/pkg/onestop/prompt"
	"go.uber.org/zap"
)

// Session quotes customers one after another on a console, numbering each
// policy from the first number it was created with.
type Session struct {
	console *prompt.Console
	calc    *Calculator
	log     *zap.Logger
	now     func() time.Time
	next    int
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithClock sets the clock that dates receipts.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		s.now = now
	}
}

// WithLogger sets the session logger.
func WithLogger(log *zap.Logger) SessionOption {
	return func(s *Session) {
		s.log = log
	}
}

// NewSession returns a Session whose first policy is numbered firstPolicy.
func NewSession(console *prompt.Console, calc *Calculator, firstPolicy int, opts ...SessionOption) *Session {
	s := &Session{
		console: console,
		calc:    calc,
		log:     zap.NewNop(),
		now:     time.Now,
		next:    firstPolicy,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NextPolicyNumber is the number the next issued policy will get.
func (s *Session) NextPolicyNumber() int {
	return s.next
}

// Run quotes customers until the operator declines to enter another.
func (s *Session) Run() error {
	for {
		receipt, err := s.Issue()
		if err != nil {
			return err
		}

		s.console.Printf("\n\n%s\n", Banner)
		s.console.Println(receipt.String())

		another, err := s.askYesNo("another", "Would you like to enter another customer? (Y/N): ")
		if err != nil {
			return err
		}
		if !another {
			return nil
		}
	}
}

// Issue collects one customer, prices the policy and returns its receipt.
// The policy number is consumed even when collection fails part way.
func (s *Session) Issue() (Receipt, error) {
	number := s.next
	s.next++

	cust, err := s.CollectCustomer()
	if err != nil {
		return Receipt{}, fmt.Errorf("policy %d: %w", number, err)
	}

	q := s.calc.Quote(cust)
	s.log.Info("Policy issued",
		zap.Int("policy", number),
		zap.Int("vehicles", cust.VehicleCount),
		zap.String("payment", string(cust.PaymentMethod)),
		zap.Stringer("premium", q.Premium),
		zap.Stringer("total", q.Total),
		zap.Int("claims", len(cust.Claims)),
	)

	return Receipt{
		PolicyNumber: number,
		Date:         s.now(),
		Customer:     cust,
		Quote:        q,
	}, nil
}

func (s *Session) askText(name, text string) (string, error) {
	answer, err := s.console.Ask(text)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return answer, nil
}

func (s *Session) askYesNo(name, text string) (bool, error) {
	return prompt.Ask(s.console, prompt.Field[bool]{
		Name:    name,
		Prompt:  text,
		Parse:   ValidateYesNo,
		Invalid: func(error) string { return "Invalid input! Please enter 'Y' for Yes or 'N' for No." },
	})
}

// CollectCustomer prompts for every customer field, re-asking rejected answers.
func (s *Session) CollectCustomer() (dal.Customer, error) {
	var (
		c   dal.Customer
		err error
	)

	text := []struct {
		name   string
		prompt string
		dst    *string
	}{
		{"first name", "\nEnter the customer's first name: ", &c.FirstName},
		{"last name", "Enter the customer's last name: ", &c.LastName},
		{"address", "Enter customer's address: ", &c.Address},
		{"city", "Enter customer's city: ", &c.City},
	}
	for _, f := range text {
		if *f.dst, err = s.askText(f.name, f.prompt); err != nil {
			return c, err
		}
	}

	c.Province, err = prompt.Ask(s.console, prompt.Field[string]{
		Name:    "province",
		Prompt:  "Enter customer's province (e.g., ON, QC, etc.): ",
		Retry:   "Enter the province (e.g., ON, QC, etc.): ",
		Parse:   ValidateProvince,
		Invalid: func(error) string { return "Invalid province. Please enter a valid province." },
	})
	if err != nil {
		return c, err
	}

	if c.PostalCode, err = s.askText("postal code", "Enter customer's postal code: "); err != nil {
		return c, err
	}
	if c.Phone, err = s.askText("phone", "Enter customer's phone number (999-999-9999): "); err != nil {
		return c, err
	}

	c.VehicleCount, err = prompt.Ask(s.console, prompt.Field[int]{
		Name:    "vehicle count",
		Prompt:  "Enter the number of cars being insured: ",
		Parse:   ValidateVehicleCount,
		Invalid: func(error) string { return "Invalid number of cars. Please enter a whole number greater than zero." },
	})
	if err != nil {
		return c, err
	}

	if c.Coverage.ExtraLiability, err = s.askYesNo("extra liability", "Extra liability coverage (Y/N): "); err != nil {
		return c, err
	}
	if c.Coverage.Glass, err = s.askYesNo("glass coverage", "Glass coverage (Y/N): "); err != nil {
		return c, err
	}
	if c.Coverage.Loaner, err = s.askYesNo("loaner car", "Loaner car option (Y/N): "); err != nil {
		return c, err
	}

	c.PaymentMethod, err = prompt.Ask(s.console, prompt.Field[dal.PaymentMethod]{
		Name:    "payment method",
		Prompt:  "Payment method (Full, Monthly, Down Pay): ",
		Parse:   ValidatePaymentMethod,
		Invalid: func(error) string { return "Invalid payment method. Please enter a valid method." },
	})
	if err != nil {
		return c, err
	}

	if c.PaymentMethod == dal.PaymentDownPay {
		c.DownPayment, err = prompt.Ask(s.console, prompt.Field[float64]{
			Name:    "down payment",
			Prompt:  "Enter the amount of the down payment: ",
			Parse:   ValidateDownPayment,
			Invalid: func(error) string { return "Invalid down payment. Please enter a number that is not negative." },
		})
		if err != nil {
			return c, err
		}
	}

	if c.Claims, err = s.collectClaims(); err != nil {
		return c, err
	}
	return c, nil
}

// collectClaims reads claims until an empty date is entered.
func (s *Session) collectClaims() ([]dal.Claim, error) {
	claims := []dal.Claim{}
	s.console.Println("Enter previous claims (press Enter to finish):")
	for {
		date, err := s.askText("claim date", "  Enter the date of the claim (YYYY-MM-DD) or press Enter to finish: ")
		if err != nil {
			return nil, err
		}
		if date == "" {
			return claims, nil
		}

		amount, err := prompt.Ask(s.console, prompt.Field[float64]{
			Name:    "claim amount",
			Prompt:  "  Enter the amount of the claim: ",
			Parse:   ValidateClaimAmount,
			Invalid: func(error) string { return "Invalid claim amount. Please enter a number." },
		})
		if err != nil {
			return nil, err
		}
		claims = append(claims, dal.Claim{Date: date, Amount: amount})
	}
}
