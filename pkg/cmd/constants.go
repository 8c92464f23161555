package cmd

const (
	RootCmdName  = "onestop"
	RootCmdShort = "One Stop Insurance console tools"
	RootCmdLong  = `onestop bundles the One Stop console tools.

  sales   collect twelve monthly sales totals and draw them as a bar chart
  quote   quote insurance policies and print a receipt for each customer

Rates and defaults can be changed with a YAML file (--config) or ONESTOP_*
environment variables, e.g. ONESTOP_RATES_HST=0.13.`

	SalesCmdName  = "sales"
	SalesCmdShort = "Collect monthly sales and chart them"
	SalesCmdLong  = `Prompts for the total sales of every month from Jan to Dec, re-asking a
month until a non-negative number is entered, then shows the year as a bar
chart. On a terminal the chart stays up until it is closed with q, esc or enter.`

	QuoteCmdName  = "quote"
	QuoteCmdShort = "Quote insurance policies and print receipts"
	QuoteCmdLong  = `Collects customer, vehicle, coverage, payment and claim details, prices
the policy and prints a receipt. Repeats for as many customers as needed;
policy numbers increase by one per customer, starting from policy.first_number.`
)
