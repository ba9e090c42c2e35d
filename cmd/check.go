package cmd

import (
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vipcxj/rangeconst/internal/catalog"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check TYPE VALUE...",
		Short: "Validate values against a ranged type",
		Long: `Validate each VALUE against TYPE and print the accepted value or the reason it was rejected.
Integers may be written in decimal, hex (0x), octal (0o) or binary (0b). Use "--" before negative values.`,
		Example: "  rangeconst check month 1 12 13\n  rangeconst check wide -- -5",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := catalog.Lookup(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			values := args[1:]
			rejected := 0
			for _, text := range values {
				v, err := e.Check(text)
				if err != nil {
					rejected++
					slog.Debug("Value rejected", "type", e.Name, "value", text, "err", err)
					fmt.Fprintf(out, "%s %s: %v\n", failMark(), text, err)

					continue
				}
				fmt.Fprintf(out, "ok   %s\n", v)
			}

			if rejected > 0 {
				return errors.Errorf("%d of %d values rejected", rejected, len(values))
			}

			return nil
		},
	}
}
