package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	hferror "github.com/msto63/humanfmt/foundation/core/error"
	"github.com/msto63/humanfmt/foundation/utils/mathx"
	"github.com/msto63/humanfmt/internal/report"
	"github.com/msto63/humanfmt/pkg/core/config"
)

func newDiffCmd(a *app) *cobra.Command {
	var (
		showTable bool
		pairsFile string
		style     string
	)

	cmd := &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Render a-b at the scale of the larger number",
		Long: `Render the difference a-b in compact notation. The scale follows the
larger of |a| and |b|, so small differences between large numbers read as 0.00B.

With --table a comparison table is rendered instead, from --pairs, the
configured pairs_file or the built-in demonstration pairs.

Flags go before the numbers. A leading negative number must follow --,
otherwise it is read as a flag.`,
		Example: `  humanfmt diff 5000000000 4500000000   # 0.50B
  humanfmt diff -- -2000 0               # -2.00K
  humanfmt diff 100 -2000                # 2.10K
  humanfmt diff --table
  humanfmt diff --table --pairs pairs.yaml --style markdown`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if showTable {
				if len(args) != 0 {
					return hferror.New("--table takes no number arguments").
						WithCode(hferror.CodeInvalidInput).
						WithOperation("cmd.diff")
				}
				return a.renderTable(out, pairsFile, style)
			}

			if len(args) != 2 {
				return hferror.New("diff needs exactly two numbers").
					WithCode(hferror.CodeInvalidInput).
					WithOperation("cmd.diff")
			}

			x1, err := parseNumberArg(args[0])
			if err != nil {
				return err
			}
			x2, err := parseNumberArg(args[1])
			if err != nil {
				return err
			}

			fmt.Fprintln(out, mathx.FormatDifference(x1, x2))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showTable, "table", "t", false, "render the comparison table")
	cmd.Flags().StringVar(&pairsFile, "pairs", "", "TOML, YAML or JSON file with pairs for --table")
	cmd.Flags().StringVar(&style, "style", "", "table style: rounded, normal, ascii or markdown")
	acceptNegativeNumbers(cmd)

	return cmd
}

func (a *app) renderTable(out io.Writer, pairsFile, style string) error {
	if pairsFile == "" {
		pairsFile = a.cfg.Number.PairsFile
	}
	if style == "" {
		style = a.cfg.Number.TableStyle
	}
	if !isTableStyle(style) {
		return hferror.New("unknown table style: "+style).
			WithCode(hferror.CodeInvalidInput).
			WithOperation("cmd.diff").
			WithDetail("style", style)
	}

	pairs := report.DefaultPairs()
	if pairsFile != "" {
		loaded, err := report.LoadPairs(pairsFile)
		if err != nil {
			return err
		}
		pairs = loaded
		a.logger.Debug("pairs loaded", "path", pairsFile, "count", len(pairs))
	}

	fmt.Fprintln(out, report.Render(report.BuildRows(pairs), style))
	return nil
}

func isTableStyle(style string) bool {
	for _, s := range config.TableStyles {
		if s == style {
			return true
		}
	}
	return false
}
