package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/humanfmt/foundation/utils/mapx"
	"github.com/msto63/humanfmt/internal/report"
)

func newPresetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "presets",
		Aliases: []string{"formats"},
		Short:   "List named formats and presets",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string

			for _, name := range a.converter.Names() {
				rows = append(rows, []string{name, "named", ""})
			}

			presets := a.converter.Presets()
			for _, name := range mapx.SortedKeys(presets) {
				kind := "preset"
				if name == a.cfg.Timestamp.DefaultFormat {
					kind = "preset (default)"
				}
				rows = append(rows, []string{name, kind, presets[name]})
			}

			fmt.Fprintln(cmd.OutOrStdout(),
				report.RenderList([]string{"Name", "Kind", "Template"}, rows, a.cfg.Number.TableStyle))
			return nil
		},
	}
}
