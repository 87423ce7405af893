package release

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/caltechads/brigid-cli/cmd/util"
	brigidclient "github.com/caltechads/brigid-cli/internal/client"
	"github.com/caltechads/brigid-cli/internal/formatter"
)

var deleteReleaseCmd = &cobra.Command{
	Use:     "delete IDENTIFIER",
	Aliases: []string{"remove", "rm"},
	Short:   "Delete a Brigid release record",
	Long: "Delete a release record from the Brigid inventory. IDENTIFIER " +
		"is either a Release.id or a \"machine_name:version\" pair.",
	Example: `brigid releases delete access_checker:1.2.0`,
	Args:    cobra.ExactArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		viper.BindPFlag("force", cmd.Flags().Lookup("force"))
		err := util.ConfirmCommand(
			fmt.Sprintf("Are you sure you want to delete %s: %s",
				"release", args[0]),
			viper.GetBool("force"))
		if err != nil {
			logrus.Fatal(formatter.Colorize(err.Error(), formatter.RedColor))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := brigidclient.AuthenticatedAPIClient()

		id, err := authAPI.ResolveReleaseID(args[0])
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if err := authAPI.DeleteRelease(id); err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		logrus.Info(fmt.Sprintf("The release %s has been deleted\n",
			formatter.Colorize(args[0], formatter.GreenColor)))
	},
}

func init() {
	deleteReleaseCmd.Flags().SortFlags = false

	deleteReleaseCmd.Flags().BoolP("force", "f", false,
		"[Optional] Bypass the prompt for non-interactive usage.")
}
