package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mazradwan/onestop/pkg/onestop/config"
	"github.com/mazradwan/onestop/pkg/onestop/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	cfgFile string
	verbose bool

	cfg    config.Config
	logger *zap.Logger
)

var RootCmd = &cobra.Command{
	Use:          RootCmdName,
	Short:        RootCmdShort,
	Long:         RootCmdLong,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, err := newViper(cmd)
		if err != nil {
			return err
		}
		cfg, err = config.Load(v, cfgFile)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Log.Level, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync(logger)
	},
}

func Execute() {

	if err := RootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(-1)
	}
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "YAML config file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
	flags.String("log-level", "", "log level: debug, info, warn or error (default warn)")

	RootCmd.AddCommand(SalesCmd, QuoteCmd)
}

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"log.level":           "log-level",
	"chart.height":        "height",
	"policy.first_number": "first-policy",
}

// newViper returns a viper bound to the flags cmd accepts.
func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	for key, name := range flagKeys {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("binding flag --%s to %s: %w", name, key, err)
			}
		}
	}
	return v, nil
}

// interactive reports whether both ends of the command are a terminal.
func interactive(in io.Reader, out io.Writer) bool {
	inFile, ok := in.(*os.File)
	if !ok {
		return false
	}
	outFile, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(inFile.Fd())) && term.IsTerminal(int(outFile.Fd()))
}
