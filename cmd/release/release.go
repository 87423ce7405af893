package release

import (
	"github.com/spf13/cobra"
)

// ReleasesCmd is the set of commands for the release records Brigid
// tracks
var ReleasesCmd = &cobra.Command{
	Use:   "releases",
	Short: "Manage Brigid release records",
	Long:  "Manage the release records in the Brigid inventory",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	ReleasesCmd.AddCommand(listReleaseCmd)
	ReleasesCmd.AddCommand(describeReleaseCmd)
	ReleasesCmd.AddCommand(createReleaseCmd)
	ReleasesCmd.AddCommand(updateReleaseCmd)
	ReleasesCmd.AddCommand(deleteReleaseCmd)
	ReleasesCmd.AddCommand(importReleaseCmd)
	ReleasesCmd.AddCommand(importAllReleasesCmd)
	ReleasesCmd.AddCommand(syncReleaseCmd)
}
