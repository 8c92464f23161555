package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mazradwan/onestop/pkg/onestop/prompt"
	"github.com/mazradwan/onestop/pkg/onestop/sales"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	SalesCmd = &cobra.Command{
		Use:   SalesCmdName,
		Short: SalesCmdShort,
		Long:  SalesCmdLong,
		Args:  cobra.NoArgs,
		RunE:  salesCmdFunc(),
	}
)

func init() {
	SalesCmd.Flags().Int("height", 0, "chart height in rows (default 12)")
}

func salesCmdFunc() func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {

		logger.Debug("Started sales cmd", zap.Int("height", cfg.Chart.Height))

		in, out := cmd.InOrStdin(), cmd.OutOrStdout()
		console := prompt.NewConsole(in, out, logger)

		year, err := sales.Collect(console)
		if err != nil {
			return fmt.Errorf("collecting sales: %w", err)
		}

		chart := sales.NewChart(lipgloss.NewRenderer(out), cfg.Chart.Height)
		live := interactive(in, out)
		logger.Info("Showing sales chart", zap.Float64("highest", year.Max()), zap.Bool("interactive", live))

		return sales.Show(chart.Render(year), in, out, live)
	}
}
