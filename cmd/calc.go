package cmd

import (
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vipcxj/rangeconst/constrained"
	"github.com/vipcxj/rangeconst/constrained/pflagvalue"
	"github.com/vipcxj/rangeconst/internal/catalog"
)

type passesBounds struct{}

func (passesBounds) First() int { return 1 }
func (passesBounds) Last() int  { return 100 }

type calcOptions struct {
	keepGoing bool
	repeat    constrained.Value[int, passesBounds]
}

func newCalcCmd() *cobra.Command {
	opts := &calcOptions{}
	cmd := &cobra.Command{
		Use:   "calc TYPE START OP...",
		Short: "Apply arithmetic to a ranged value step by step",
		Long: `Start from START and apply every OP in order, printing the value after each step.

Operations: add:N sub:N mul:N div:N mod:N inc dec postinc postdec.
Arithmetic happens in the underlying type and only the result is checked.
A failed operation leaves the value unchanged and stops the calculation
unless --keep-going is given.`,
		Example: "  rangeconst calc month 10 inc postinc div:2\n  rangeconst calc --repeat 3 percent 1 mul:4",
		Args:    cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			ops, err := catalog.ParseOps(args[2:])
			if err != nil {
				return err
			}
			c, err := e.NewCalculator(args[1])
			if err != nil {
				return errors.Wrap(err, "start value")
			}

			return runCalc(cmd, opts, c, ops)
		},
	}
	cmd.Flags().BoolVarP(&opts.keepGoing, "keep-going", "k", false, "continue with the unchanged value after a failed operation")
	cmd.Flags().VarP(pflagvalue.New(&opts.repeat), "repeat", "r", "number of passes over the operations")

	return cmd
}

func runCalc(cmd *cobra.Command, opts *calcOptions, c catalog.Calculator, ops []catalog.Op) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "start   %s\n", c.Value())

	applied, failed := 0, 0
	for pass := 0; pass < opts.repeat.Get(); pass++ {
		for _, op := range ops {
			applied++
			before := c.Value()
			yield, err := c.Apply(op)
			if err != nil {
				failed++
				slog.Debug("Operation failed", "op", op, "value", before, "err", err)
				fmt.Fprintf(out, "%s %s: %v, value stays %s\n", failMark(), op, err, c.Value())
				if !opts.keepGoing {
					return errors.Errorf("operation %s failed", op)
				}

				continue
			}
			if yield != c.Value() {
				fmt.Fprintf(out, "%-7s %s, value now %s\n", op, yield, c.Value())
			} else {
				fmt.Fprintf(out, "%-7s %s\n", op, c.Value())
			}
		}
	}

	fmt.Fprintf(out, "result  %s\n", c.Value())
	if failed > 0 {
		return errors.Errorf("%d of %d operations failed", failed, applied)
	}

	return nil
}
