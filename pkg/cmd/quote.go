package cmd

import (
	"github.com/mazradwan/onestop/pkg/onestop/prompt"
	"github.com/mazradwan/onestop/pkg/onestop/quote"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	QuoteCmd = &cobra.Command{
		Use:   QuoteCmdName,
		Short: QuoteCmdShort,
		Long:  QuoteCmdLong,
		Args:  cobra.NoArgs,
		RunE:  quoteCmdFunc(),
	}
)

func init() {
	QuoteCmd.Flags().Int("first-policy", 0, "number of the first policy issued (default 1944)")
}

func quoteCmdFunc() func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {

		logger.Debug("Started quote cmd", zap.Int("first_policy", cfg.Policy.FirstNumber))

		console := prompt.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout(), logger)
		session := quote.NewSession(console, quote.NewCalculator(cfg.Rates), cfg.Policy.FirstNumber,
			quote.WithLogger(logger),
		)
		if err := session.Run(); err != nil {
			return err
		}

		logger.Debug("Quote session finished", zap.Int("next_policy", session.NextPolicyNumber()))
		return nil
	}
}
