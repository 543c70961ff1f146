package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	hferror "github.com/msto63/humanfmt/foundation/core/error"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		flags     formatFlags
		keepGoing bool
	)

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Convert one timestamp per line",
		Long: `Convert every line of a file, or of stdin when no file is given.

Blank lines are skipped. By default the first failure stops the run;
with --keep-going failures are printed inline and counted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := a.resolveFormat("", flags.format, flags.preset)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return hferror.Wrap(err, "failed to open input").
						WithCode(hferror.CodeInvalidInput).
						WithOperation("cmd.batch").
						WithDetail("path", args[0])
				}
				defer f.Close()
				in = f
			}

			return a.convertLines(in, cmd.OutOrStdout(), target, keepGoing)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false, "report failures inline and continue")

	return cmd
}

// convertLines converts each non-blank line of in and writes the results to out
func (a *app) convertLines(in io.Reader, out io.Writer, target string, keepGoing bool) error {
	scanner := bufio.NewScanner(in)
	lineNo, converted, failed := 0, 0, 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		result, err := a.converter.Convert(line, target)
		if err != nil {
			failed++
			a.logger.Warn("line failed", "line", lineNo, "error", err)
			if !keepGoing {
				return hferror.Wrap(err, fmt.Sprintf("line %d", lineNo)).
					WithDetail("line", lineNo)
			}
			fmt.Fprintf(out, "ERROR line %d: %v\n", lineNo, err)
			continue
		}

		converted++
		fmt.Fprintln(out, result)
	}

	if err := scanner.Err(); err != nil {
		return hferror.Wrap(err, "failed to read input").
			WithCode(hferror.CodeInvalidInput).
			WithOperation("cmd.batch")
	}

	hits, misses, _ := a.plans.Stats()
	a.logger.Info("batch finished", "converted", converted, "failed", failed,
		"plan_cache_hits", hits, "plan_cache_misses", misses, "plan_cache_size", a.plans.Size())

	if failed > 0 {
		return hferror.Newf("%d of %d timestamps failed", failed, converted+failed).
			WithCode(hferror.CodeTimestampParse).
			WithOperation("cmd.batch")
	}
	return nil
}
