package quote

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/mazradwan/onestop/pkg/onestop/dal"
	"github.com/mazradwan/onestop/pkg/onestop/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func lines(answers ...string) string {
	return strings.Join(answers, "\n") + "\n"
}

// customerAnswers are the answers for one customer up to, not including, the claims.
func customerAnswers(vehicles, extra, glass, loaner, method string) []string {
	return []string{"john", "smith", "12 main st", "corner brook", "nl", "A1B 2C3", "709-555-1234", vehicles, extra, glass, loaner, method}
}

func newTestSession(input string, out io.Writer, opts ...SessionOption) *Session {
	opts = append([]SessionOption{WithClock(func() time.Time { return receiptDate })}, opts...)
	return NewSession(prompt.NewConsole(strings.NewReader(input), out, nil), newTestCalculator(), 1944, opts...)
}

func TestSessionSingleCustomer(t *testing.T) {
	answers := append(customerAnswers("1", "Y", "N", "N", "Full"), "", "N")
	var out bytes.Buffer

	require.NoError(t, newTestSession(lines(answers...), &out).Run())

	text := out.String()
	assert.Contains(t, text, Banner+"\n")
	assert.Contains(t, text, "Invoice #: 1944\n")
	assert.Contains(t, text, "Basic Premium:        $869.00\n")
	assert.Contains(t, text, "Extra Liability:      $130.00\n")
	assert.Contains(t, text, "HST:                  $149.85\n")
	assert.Contains(t, text, "Total Amount:       $1,148.85\n")
	assert.Contains(t, text, "Payment Option: Full\n")
	assert.True(t, strings.HasSuffix(text, "Would you like to enter another customer? (Y/N): "))
}

func TestSessionMatchesGoldenReceipt(t *testing.T) {
	answers := append(customerAnswers("2", "n", "y", "y", "down pay"), "200", "2021-03-14", "1500", "2022-07-01", "250.50", "", "n")
	var out bytes.Buffer

	require.NoError(t, newTestSession(lines(answers...), &out).Run())
	assert.Contains(t, out.String(), "\n\n"+Banner+"\n"+readGolden(t, "downpay.golden")+"\n")
}

func TestSessionNumbersPolicies(t *testing.T) {
	var answers []string
	answers = append(answers, customerAnswers("1", "N", "N", "N", "Full")...)
	answers = append(answers, "", "Y")
	answers = append(answers, customerAnswers("3", "N", "N", "N", "Monthly")...)
	answers = append(answers, "", "y")
	answers = append(answers, customerAnswers("1", "N", "N", "N", "Full")...)
	answers = append(answers, "", "N")

	var out bytes.Buffer
	s := newTestSession(lines(answers...), &out)
	require.NoError(t, s.Run())

	text := out.String()
	assert.Equal(t, 3, strings.Count(text, Banner))
	assert.Contains(t, text, "Invoice #: 1944\n")
	assert.Contains(t, text, "Invoice #: 1945\n")
	assert.Contains(t, text, "Invoice #: 1946\n")
	assert.Equal(t, 1947, s.NextPolicyNumber())
}

func TestSessionRepromptsInvalidAnswers(t *testing.T) {
	answers := []string{
		"john", "smith", "12 main st", "corner brook",
		"XX", "on",
		"A1B 2C3", "709-555-1234",
		"two", "0", "2",
		"maybe", "Y", "N", "N",
		"cash", "Monthly",
		"2021-03-14", ".", "-3", "100",
		"",
		"x", "N",
	}
	var out bytes.Buffer

	require.NoError(t, newTestSession(lines(answers...), &out).Run())

	text := out.String()
	assert.Equal(t, 1, strings.Count(text, "Invalid province. Please enter a valid province.\n"))
	assert.Contains(t, text, "Invalid province. Please enter a valid province.\nEnter the province (e.g., ON, QC, etc.): ")
	assert.Equal(t, 2, strings.Count(text, "Invalid number of cars."))
	assert.Equal(t, 2, strings.Count(text, "Invalid input! Please enter 'Y' for Yes or 'N' for No.\n"))
	assert.Equal(t, 1, strings.Count(text, "Invalid payment method. Please enter a valid method.\n"))
	assert.Equal(t, 2, strings.Count(text, "Invalid claim amount. Please enter a number.\n"))
	assert.Contains(t, text, "Corner Brook, ON, A1B 2C3\n")
	assert.Contains(t, text, "Number of Vehicles: 2\n")
	assert.Contains(t, text, "1.         2021-03-14                   $100.00\n")
	assert.Contains(t, text, "Payment Option: Monthly\n")
}

func TestCollectCustomerClaims(t *testing.T) {
	answers := append(customerAnswers("1", "N", "N", "N", "Full"), "2020-01-01", "10", "2020-02-02", "20.5", "")
	s := newTestSession(lines(answers...), io.Discard)

	cust, err := s.CollectCustomer()
	require.NoError(t, err)
	assert.Equal(t, []dal.Claim{{Date: "2020-01-01", Amount: 10}, {Date: "2020-02-02", Amount: 20.5}}, cust.Claims)
	assert.Equal(t, "NL", cust.Province)
	assert.Equal(t, dal.PaymentFull, cust.PaymentMethod)
	assert.Zero(t, cust.DownPayment)
}

func TestSessionEndOfInput(t *testing.T) {
	s := newTestSession(lines("john", "smith"), io.Discard)

	err := s.Run()
	assert.ErrorIs(t, err, io.EOF)
	assert.Contains(t, err.Error(), "policy 1944")
	assert.Equal(t, 1945, s.NextPolicyNumber())
}

func TestSessionLogsIssuedPolicy(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	answers := append(customerAnswers("1", "Y", "N", "N", "Full"), "", "N")

	require.NoError(t, newTestSession(lines(answers...), io.Discard, WithLogger(zap.New(core))).Run())

	entries := logs.FilterMessage("Policy issued").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(1944), fields["policy"])
	assert.Equal(t, "999", fields["premium"])
}
