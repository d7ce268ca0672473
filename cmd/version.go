package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/tq/pkg/settings"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print " + settings.CliBinaryName + " version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), cliVersionString())
		return nil
	},
}

// cliVersionString builds a human-readable version string from the
// ldflags-injected build metadata.
func cliVersionString() string {
	vi := settings.VersionInformation
	return fmt.Sprintf("%s %s (commit %s, built %s)",
		settings.CliBinaryName, vi.BuildVersion, vi.Commit, vi.BuildTime)
}
