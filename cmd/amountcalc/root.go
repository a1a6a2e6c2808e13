package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"

	"github.com/spf13/cobra"

	"github.com/hgati/amount"
)

// options holds the persistent flags and the state derived from them
// before a subcommand runs.
type options struct {
	configPath string
	extend     int
	maxScale   int
	color      string
	verbose    bool

	prec   amount.Precision
	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "amountcalc",
		Short: "Exact decimal calculator",
		Long: `amountcalc evaluates exact decimal arithmetic from the command line.

Sums, differences and products are exact. Quotients are truncated at a scale
chosen by the division policy, which can be tuned with --extend and
--max-scale or with the [division] table of a TOML configuration file.

Negative operands must follow "--" so they are not taken for flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "TOML file with the division policy (default "+defaultConfigFile+" if present)")
	flags.IntVar(&opts.extend, "extend", amount.DefaultExtend, "digits kept beyond twice the dividend scale")
	flags.IntVar(&opts.maxScale, "max-scale", amount.DefaultMaxScale, "cap on the growth of the quotient scale")
	flags.StringVar(&opts.color, "color", "auto", "colorize output (auto|on|off)")
	flags.BoolVar(&opts.verbose, "verbose", false, "log the division policy and each step to stderr")

	cmd.AddCommand(newEvalCmd(opts))
	cmd.AddCommand(newChainCmd(opts))
	cmd.AddCommand(newCmpCmd(opts))

	return cmd
}

// setup resolves the division policy. Defaults are overridden by the
// configuration file, which is in turn overridden by explicit flags.
func (o *options) setup(cmd *cobra.Command) error {
	if err := setColorMode(o.color); err != nil {
		return err
	}

	o.logger = log.New(io.Discard, "amountcalc: ", 0)
	if o.verbose {
		o.logger.SetOutput(cmd.ErrOrStderr())
	}

	flags := cmd.Flags()
	prec := amount.DefaultPrecision()

	path, explicit := o.configPath, flags.Changed("config")
	if !explicit {
		path = defaultConfigFile
	}
	p, err := loadConfig(path, prec)
	switch {
	case err == nil:
		o.logger.Printf("loaded %s", path)
		prec = p
	case !explicit && errors.Is(err, fs.ErrNotExist):
		// no configuration file
	default:
		return err
	}

	if flags.Changed("extend") {
		prec.Extend = o.extend
	}
	if flags.Changed("max-scale") {
		prec.MaxScale = o.maxScale
	}
	if err := prec.Validate(); err != nil {
		return fmt.Errorf("division policy: %w", err)
	}

	o.prec = prec
	o.logger.Printf("division policy: extend=%d max-scale=%d", prec.Extend, prec.MaxScale)
	return nil
}
