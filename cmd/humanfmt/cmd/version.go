package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/humanfmt/pkg/core/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// version works without a readable config
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, version.String())
			for _, component := range []string{"timex", "mathx", "playground"} {
				fmt.Fprintf(out, "  %-11s %s\n", component+":", version.ComponentVersion(component))
			}
		},
	}
}
