package software

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/caltechads/brigid-cli/cmd/util"
	brigidclient "github.com/caltechads/brigid-cli/internal/client"
	"github.com/caltechads/brigid-cli/internal/formatter"
)

var deleteSoftwareCmd = &cobra.Command{
	Use:     "delete IDENTIFIER",
	Aliases: []string{"remove", "rm"},
	Short:   "Delete a Brigid software record",
	Long: "Delete a software record from the Brigid inventory, along with " +
		"its releases. IDENTIFIER is either a Software.id or a " +
		"Software.machine_name.",
	Example: `brigid software delete access_checker`,
	Args:    cobra.ExactArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		viper.BindPFlag("force", cmd.Flags().Lookup("force"))
		err := util.ConfirmCommand(
			fmt.Sprintf("Are you sure you want to delete %s: %s",
				"software", args[0]),
			viper.GetBool("force"))
		if err != nil {
			logrus.Fatal(formatter.Colorize(err.Error(), formatter.RedColor))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := brigidclient.AuthenticatedAPIClient()

		id, err := authAPI.ResolveSoftwareID(args[0])
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		if err := authAPI.DeleteSoftware(id); err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		logrus.Info(fmt.Sprintf("The software record %s has been deleted\n",
			formatter.Colorize(args[0], formatter.GreenColor)))
	},
}

func init() {
	deleteSoftwareCmd.Flags().SortFlags = false

	deleteSoftwareCmd.Flags().BoolP("force", "f", false,
		"[Optional] Bypass the prompt for non-interactive usage.")
}
