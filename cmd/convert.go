package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vipcxj/rangeconst/internal/catalog"
)

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert FROM TO VALUE",
		Short: "Move a value from one ranged type to another",
		Long: `Validate VALUE as FROM and assign it to TO, which checks it again against TO's range.
Integer types of different widths convert through their numeric value.`,
		Example: "  rangeconst convert percent month 7",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			to, err := catalog.Lookup(args[1])
			if err != nil {
				return err
			}
			v, err := from.Convert(to, args[2])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)

			return err
		},
	}
}
