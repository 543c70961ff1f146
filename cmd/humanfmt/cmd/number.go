package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	hferror "github.com/msto63/humanfmt/foundation/core/error"
	"github.com/msto63/humanfmt/foundation/utils/mathx"
)

func newNumberCmd(a *app) *cobra.Command {
	var verboseScale bool

	cmd := &cobra.Command{
		Use:   "number <n>...",
		Short: "Render numbers in compact K/M/B notation",
		Long: `Render each number in compact K/M/B notation with two decimals.

Flags go before the numbers. A leading negative number must follow --,
otherwise it is read as a flag.`,
		Example: `  humanfmt number 1234567890        # 1.23B
  humanfmt number -- 1_500 -42000 999
  humanfmt number --verbose-scale 5,000,000`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			for _, arg := range args {
				n, err := parseNumberArg(arg)
				if err != nil {
					return err
				}

				compact, magnitude := mathx.FormatNumber(n)
				if verboseScale {
					fmt.Fprintf(out, "%s\t%s\tscale=%s\n", mathx.FormatGrouped(n), compact, magnitude)
				} else {
					fmt.Fprintln(out, compact)
				}
				a.logger.Debug("formatted", "input", arg, "magnitude", magnitude.String())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&verboseScale, "verbose-scale", false, "also print the grouped input and the chosen scale")
	acceptNegativeNumbers(cmd)

	return cmd
}

// acceptNegativeNumbers stops flag parsing at the first number so later
// negative arguments are not taken for flags, and points at -- when a
// leading negative number was.
func acceptNegativeNumbers(cmd *cobra.Command) {
	cmd.Flags().SetInterspersed(false)
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		if looksNegative(err.Error()) {
			return hferror.Wrap(err, "negative numbers must follow --").
				WithCode(hferror.CodeInvalidInput).
				WithOperation("cmd." + c.Name())
		}
		return err
	})
}

// looksNegative reports whether a pflag error names a digit shorthand
func looksNegative(msg string) bool {
	i := strings.Index(msg, "shorthand flag: '")
	if i < 0 {
		return false
	}
	c := msg[i+len("shorthand flag: '"):]
	return c != "" && (c[0] >= '0' && c[0] <= '9' || c[0] == '.')
}

func parseNumberArg(arg string) (float64, error) {
	n, err := mathx.ParseNumber(arg)
	if err != nil {
		return 0, hferror.Wrap(err, "invalid number argument").
			WithCode(hferror.CodeInvalidInput).
			WithOperation("cmd.number").
			WithDetail("argument", arg)
	}
	return n, nil
}
