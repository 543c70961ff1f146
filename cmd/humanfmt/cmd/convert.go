// ============================================================================
// humanfmt - Human-readable timestamp and number formatting
// ============================================================================
//
// Package:     cmd
// Description: CLI commands for timestamp conversion
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// formatFlags are the format selection flags shared by convert and batch
type formatFlags struct {
	format string
	preset string
}

func (f *formatFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "target format: a template, epoch_ms or epoch_sec")
	cmd.Flags().StringVarP(&f.preset, "preset", "p", "", "target format by preset name")
}

func newConvertCmd(a *app) *cobra.Command {
	var (
		flags    formatFlags
		showPlan bool
	)

	cmd := &cobra.Command{
		Use:   "convert <timestamp> [format]",
		Short: "Convert a timestamp to another format",
		Long: `Convert an ISO 8601 timestamp to a template, a preset or a named format.

Without a format the configured default_format is used.`,
		Example: `  humanfmt convert 2024-01-15T10:30:45.123456-08:00 YYYY-MM-DD
  humanfmt convert 2024-01-15T10:30:45-08:00 --format 'YYYY-MM-DDTHH:MI:SS.nnnnnnnnnZ'
  humanfmt convert 2024-01-15T10:30:45Z epoch_ms
  humanfmt convert 2024-01-15T10:30:45Z --preset date --plan`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			positional := ""
			if len(args) == 2 {
				positional = args[1]
			}

			target, err := a.resolveFormat(positional, flags.format, flags.preset)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if showPlan {
				printPlan(out, a, target)
			}

			result, err := a.converter.Convert(args[0], target)
			if err != nil {
				a.logger.LogError(err)
				return err
			}

			a.logger.Debug("converted", "timestamp", args[0], "format", target, "result", result)
			fmt.Fprintln(out, result)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&showPlan, "plan", false, "print the translated template before the result")

	return cmd
}

func printPlan(w io.Writer, a *app, target string) {
	if a.converter.IsNamed(target) {
		fmt.Fprintf(w, "plan: named format %q\n", target)
		return
	}
	fmt.Fprintf(w, "plan: %s\n", a.converter.Plan(target))
}
