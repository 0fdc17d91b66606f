// Command etru-helpers exposes the ETRU number-theory helpers on the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/etru/helpers/internal/config"
)

var logger = zap.NewNop()

// buildLogger turns the resolved zap configuration into the process logger.
var buildLogger = func(zc zap.Config) (*zap.Logger, error) {
	return zc.Build()
}

// options holds the resolved settings of one invocation. Flags left at their
// zero value fall back to the environment.
type options struct {
	cfg     config.Config
	output  string
	workers int
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "etru-helpers",
		Short: "Number-theory helpers for the ETRU cryptosystem",
		Long: `etru-helpers runs the extended Euclidean algorithm, primality tests and
base 10 <-> base 7 conversion used by ETRU (NTRU over the Eisenstein integers).

Numbers are read and written as decimal strings of any size. Separate negative
arguments from the flags with "--", e.g. "etru-helpers to7 -- -8".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.cfg = cfg
			if opts.output == "" {
				opts.output = cfg.Output
			}
			if err := config.ValidateOutput(opts.output); err != nil {
				return err
			}
			if opts.workers <= 0 {
				opts.workers = cfg.Workers
			}

			zc := zap.NewProductionConfig()
			lvl, err := cfg.Level()
			if err != nil {
				return err
			}
			zc.Level = zap.NewAtomicLevelAt(lvl)
			if opts.verbose {
				zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
			}
			logger, err = buildLogger(zc)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger.Debug("configuration loaded",
				zap.String("output", opts.output),
				zap.Int("workers", opts.workers),
				zap.String("prime_policy", cfg.PrimePolicy))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "Output format: text, json or yaml (or set ETRU_OUTPUT)")
	rootCmd.PersistentFlags().IntVarP(&opts.workers, "workers", "j", 0, "Concurrent conversions (or set ETRU_WORKERS)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(newEgcdCmd(opts))
	rootCmd.AddCommand(newPrimeCmd(opts))
	rootCmd.AddCommand(newEisensteinPrimeCmd(opts))
	rootCmd.AddCommand(newToBase7Cmd(opts))
	rootCmd.AddCommand(newFromBase7Cmd(opts))
	rootCmd.AddCommand(newEncodeCmd(opts))
	rootCmd.AddCommand(newDecodeCmd(opts))

	return rootCmd
}

// execute runs cmd and flushes the logger whether or not a command failed.
func execute(cmd *cobra.Command) error {
	defer func() {
		_ = logger.Sync()
	}()
	return cmd.Execute()
}

func main() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}
