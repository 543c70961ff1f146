package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/humanfmt/foundation/utils/timex"
	"github.com/msto63/humanfmt/internal/tui/playground"
	"github.com/msto63/humanfmt/pkg/core/config"
)

func newPlaygroundCmd(a *app) *cobra.Command {
	var timestamp, numberA, numberB string

	cmd := &cobra.Command{
		Use:     "playground",
		Aliases: []string{"tui"},
		Short:   "Try templates and numbers interactively",
		Long: `Starts the interactive playground.

Type a timestamp and a format to see the translated template and the
result; type two numbers to see their compact forms and difference.
When a config file is in use, changes to it reload the presets.

Keys:
  Tab / Shift+Tab   next / previous field
  Esc / Ctrl+C      quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.Path()

			return playground.Run(playground.Config{
				Converter:  a.converter,
				Timestamp:  timestamp,
				Format:     a.cfg.Timestamp.DefaultFormat,
				NumberA:    numberA,
				NumberB:    numberB,
				ConfigPath: path,
				Reload: func() (*timex.Converter, error) {
					cfg, err := config.Load(path)
					if err != nil {
						return nil, err
					}
					// plans compiled under the old config are not reused
					a.plans.Clear()
					return cfg.Converter(timex.WithPlanCache(a.plans))
				},
				Logger: a.logger,
			})
		},
	}

	cmd.Flags().StringVar(&timestamp, "timestamp", "", "initial timestamp")
	cmd.Flags().StringVar(&numberA, "a", "", "initial first number")
	cmd.Flags().StringVar(&numberB, "b", "", "initial second number")

	return cmd
}
