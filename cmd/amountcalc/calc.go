package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hgati/amount"
)

func newEvalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <a> <op> <b>",
		Short: "Evaluate a single binary operation",
		Long: `Evaluate a single binary operation on two amounts.

Operators: + - x * /`,
		Example: `  amountcalc eval 0.1 + 0.2
  amountcalc eval 123 / 456
  amountcalc --extend 2 eval 1 / 3
  amountcalc eval -- -1.5 x 2`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := amount.Parse(args[0])
			if err != nil {
				return err
			}
			b, err := amount.Parse(args[2])
			if err != nil {
				return err
			}
			c, err := apply(a, args[1], b, opts.prec)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c) //nolint:errcheck
			return nil
		},
	}
}

func newChainCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "chain <a> <op> <b> [<op> <c>...]",
		Short: "Evaluate operations left to right, printing every step",
		Long: `Evaluate operations strictly left to right, without operator precedence,
and print the running value after every step. Repeated division shows how
the scale of the running value grows until the max-scale cap.`,
		Example: `  amountcalc chain 123 / 456 / 456
  amountcalc chain 1234.56 - 99.99 + 0.01 + 100`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 3 || len(args)%2 == 0 {
				return fmt.Errorf("expected <a> followed by <op> <b> pairs, got %d args", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := amount.Parse(args[0])
			if err != nil {
				return err
			}
			for i := 1; i < len(args); i += 2 {
				b, err := amount.Parse(args[i+1])
				if err != nil {
					return err
				}
				c, err := apply(acc, args[i], b, opts.prec)
				if err != nil {
					return fmt.Errorf("step %d: %w", i/2+1, err)
				}
				opts.logger.Printf("step %d: %v %s %v = %v (scale %d)", i/2+1, acc, args[i], b, c, c.Scale())
				acc = c
				fmt.Fprintln(cmd.OutOrStdout(), acc) //nolint:errcheck
			}
			return nil
		},
	}
}

func newCmpCmd(_ *options) *cobra.Command {
	var total bool
	cmd := &cobra.Command{
		Use:   "cmp <a> <b>",
		Short: "Compare two amounts",
		Long: `Compare two amounts by value and print <, = or >.
With --total, amounts of equal value are ordered by scale, so 1.0 < 1.`,
		Example: `  amountcalc cmp 1.5 1.50
  amountcalc cmp --total 1.5 1.50`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := amount.Parse(args[0])
			if err != nil {
				return err
			}
			b, err := amount.Parse(args[1])
			if err != nil {
				return err
			}
			c := a.Cmp(b)
			if total {
				c = a.CmpTotal(b)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cmpSymbol(c)) //nolint:errcheck
			return nil
		},
	}
	cmd.Flags().BoolVar(&total, "total", false, "order equal values by scale")
	return cmd
}

// apply evaluates a op b. Division uses the given policy.
func apply(a amount.Amount, op string, b amount.Amount, prec amount.Precision) (amount.Amount, error) {
	switch op {
	case "+":
		a.AddAssign(b)
	case "-":
		a.SubAssign(b)
	case "x", "*":
		a.MulAssign(b)
	case "/":
		c, err := a.QuoPrec(b, prec)
		if err != nil {
			return amount.Amount{}, err
		}
		a = c
	default:
		return amount.Amount{}, fmt.Errorf("unknown operator %q, want one of + - x * /", op)
	}
	return a, nil
}

func cmpSymbol(c int) string {
	switch {
	case c < 0:
		return "<"
	case c > 0:
		return ">"
	default:
		return "="
	}
}
