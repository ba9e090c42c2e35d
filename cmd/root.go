// Package cmd implements the rangeconst command line.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/vipcxj/rangeconst/internal/config"
)

const (
	shortDesc = "Validate and compute with range-constrained integers"
	longDesc  = `rangeconst works with integer types restricted to an inclusive range [first, last].

Every value is checked when it is created or changed. Arithmetic is carried out
in the underlying type and only the final result is checked, so a failed
operation never changes the stored value.

Run "rangeconst types" to list the available ranged types.

Environment:
  RANGECONST_LOG_LEVEL   debug, info, warn or error (default warn)
  RANGECONST_SHELL       auto, sh, powershell or cmd (default auto)
  RANGECONST_ENV_PREFIX  prefix for variables printed by export
  RANGECONST_NO_COLOR    disable coloured output`
)

type rootOptions struct {
	verbose bool
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "rangeconst",
		Short:         shortDesc,
		Long:          longDesc,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.cfg = cfg

			level := cfg.LogLevel
			if opts.verbose {
				level = slog.LevelDebug
			}
			setupLogger(cmd.ErrOrStderr(), level)
			color.NoColor = cfg.NoColor || !isTerminal(cmd.OutOrStdout())
			slog.Debug("Config loaded", "shell", cfg.Shell, "prefix", cfg.EnvPrefix, "noColor", cfg.NoColor)

			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output (includes debug)")

	root.AddCommand(
		newTypesCmd(),
		newCheckCmd(),
		newCalcCmd(),
		newConvertCmd(),
		newValuesCmd(),
		newExportCmd(opts),
	)

	return root
}

// Execute runs the command line with os.Args and returns the process exit code.
// A new command tree is built on every call.
func Execute() int {
	root := newRootCmd()
	root.SetArgs(os.Args[1:])
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func setupLogger(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(w),
	})))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func failMark() string {
	return color.New(color.FgRed).Sprint("FAIL")
}
