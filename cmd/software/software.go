package software

import (
	"github.com/spf13/cobra"
)

// SoftwareCmd is the set of commands for the software records Brigid
// tracks
var SoftwareCmd = &cobra.Command{
	Use:   "software",
	Short: "Manage Brigid software records",
	Long:  "Manage the software records in the Brigid inventory",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	SoftwareCmd.AddCommand(listSoftwareCmd)
	SoftwareCmd.AddCommand(describeSoftwareCmd)
	SoftwareCmd.AddCommand(updateSoftwareCmd)
	SoftwareCmd.AddCommand(deleteSoftwareCmd)
	SoftwareCmd.AddCommand(importSoftwareCmd)
	SoftwareCmd.AddCommand(syncSoftwareCmd)
}
