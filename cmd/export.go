package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vipcxj/rangeconst/internal/catalog"
	"github.com/vipcxj/rangeconst/internal/shell"
)

type exportOptions struct {
	shell   string
	prefix  string
	persist bool
}

func newExportCmd(root *rootOptions) *cobra.Command {
	opts := &exportOptions{}
	cmd := &cobra.Command{
		Use:   "export NAME=TYPE:VALUE...",
		Short: "Print shell assignments for validated values",
		Long: `Validate every VALUE against its TYPE and print one assignment per NAME for the chosen shell.
Nothing is printed unless every value is valid. NAME is upper-cased, "-" becomes "_"
and the prefix is prepended.

  eval "$(rangeconst export --shell sh start-month=month:3)"`,
		Example: "  rangeconst export --shell powershell --prefix APP_ level=percent:40 day=workday:Monday",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("shell") {
				opts.shell = root.cfg.Shell
			}
			if !cmd.Flags().Changed("prefix") {
				opts.prefix = root.cfg.EnvPrefix
			}

			shellType, err := shell.ShellTypeString(opts.shell)
			if err != nil {
				return errors.Errorf("invalid shell %q, expected one of %s", opts.shell, strings.Join(shell.ShellTypeStrings(), ", "))
			}

			vars, err := exportVars(args, opts.prefix)
			if err != nil {
				return err
			}

			resolved, err := shell.Resolve(shellType)
			if err != nil {
				return err
			}
			slog.Debug("Rendering variables", "shell", resolved, "count", len(vars), "persist", opts.persist)

			text, err := shell.Render(resolved, vars, opts.persist)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)

			return err
		},
	}
	cmd.Flags().StringVarP(&opts.shell, "shell", "s", "auto", "target shell: "+strings.Join(shell.ShellTypeStrings(), ", "))
	cmd.Flags().StringVarP(&opts.prefix, "prefix", "p", "", "prefix added to every variable name")
	cmd.Flags().BoolVar(&opts.persist, "persist", false, "store the variables for the user (PowerShell user environment, setx for cmd); sh output is always exported")

	return cmd
}

// exportVars validates every NAME=TYPE:VALUE argument, reporting all failures at once.
func exportVars(args []string, prefix string) ([]shell.Var, error) {
	vars := make([]shell.Var, 0, len(args))
	var problems []string
	for _, arg := range args {
		v, err := exportVar(arg, prefix)
		if err != nil {
			problems = append(problems, err.Error())

			continue
		}
		vars = append(vars, v)
	}
	if len(problems) > 0 {
		return nil, errors.New(strings.Join(problems, "; "))
	}

	return vars, nil
}

func exportVar(arg string, prefix string) (shell.Var, error) {
	name, rest, ok := strings.Cut(arg, "=")
	if !ok || name == "" {
		return shell.Var{}, errors.Errorf("%q: expected NAME=TYPE:VALUE", arg)
	}
	typ, text, ok := strings.Cut(rest, ":")
	if !ok {
		return shell.Var{}, errors.Errorf("%q: expected NAME=TYPE:VALUE", arg)
	}
	e, err := catalog.Lookup(typ)
	if err != nil {
		return shell.Var{}, errors.Wrapf(err, "%s", name)
	}
	v, err := e.Check(text)
	if err != nil {
		return shell.Var{}, errors.Wrapf(err, "%s", name)
	}

	return shell.Var{Name: shell.EnvName(name, prefix), Value: v}, nil
}
