package cmd

import (
	"fmt"
	"log/slog"
	"math/big"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vipcxj/rangeconst/constrained"
	"github.com/vipcxj/rangeconst/constrained/pflagvalue"
	"github.com/vipcxj/rangeconst/internal/catalog"
	"github.com/vipcxj/rangeconst/internal/interval"
)

type limitBounds struct{}

func (limitBounds) First() int { return 1 }
func (limitBounds) Last() int  { return 10000 }

func newValuesCmd() *cobra.Command {
	limit := constrained.Must[int, limitBounds](100)
	cmd := &cobra.Command{
		Use:   "values TYPE [INTERVAL]",
		Short: "List the values of a ranged type",
		Long: `List the values of TYPE in ascending order, optionally only those inside INTERVAL.

INTERVAL is one of N, =N, >N, >=N, <N, <=N or a bracketed interval such as
[3,9], (3,9], [3,) or (,9). Enum types are selected by their numeric value.`,
		Example: "  rangeconst values month '[3,6]'\n  rangeconst values --limit 3 wide '>=0'",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			iv := interval.Unbounded()
			if len(args) == 2 {
				if iv, err = interval.Parse(args[1]); err != nil {
					return err
				}
			}

			first, last := e.Bounds()
			lo, hi, ok := iv.Clamp(first, last)
			slog.Debug("Listing values", "type", e.Name, "interval", iv.String(), "lo", lo, "hi", hi, "empty", !ok)
			if !ok {
				return nil
			}

			out := cmd.OutOrStdout()
			values, more := e.Values(lo, hi, limit.Get())
			for _, v := range values {
				fmt.Fprintln(out, v)
			}
			if more {
				rest := new(big.Int).Sub(hi, lo)
				rest.Add(rest, big.NewInt(1-int64(len(values))))
				fmt.Fprintf(out, "... %s more\n", humanize.BigComma(rest))
			}

			return nil
		},
	}
	cmd.Flags().VarP(pflagvalue.New(&limit), "limit", "l", "maximum number of values to print")

	return cmd
}
