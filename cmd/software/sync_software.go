package software

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/caltechads/brigid-cli/cmd/util"
	brigidclient "github.com/caltechads/brigid-cli/internal/client"
	"github.com/caltechads/brigid-cli/internal/formatter"
	"github.com/caltechads/brigid-cli/internal/formatter/software"
)

var syncSoftwareCmd = &cobra.Command{
	Use:   "sync IDENTIFIER",
	Short: "Re-sync a Brigid software record",
	Long: "Re-sync a software record from its upstream git provider, " +
		"refreshing the fields Brigid mirrors from the repository. " +
		"IDENTIFIER is either a Software.id or a Software.machine_name.",
	Example: `brigid software sync access_checker`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := brigidclient.AuthenticatedAPIClient()

		id, err := authAPI.ResolveSoftwareID(args[0])
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		syncedID, err := authAPI.SyncSoftware(id)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		logrus.Info(fmt.Sprintf("The software record %s has been synced\n",
			formatter.Colorize(args[0], formatter.GreenColor)))

		record, err := authAPI.GetSoftware(syncedID)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		if util.IsOutputType(formatter.TableFormatKey) {
			fullSoftwareContext := *software.NewFullSoftwareContext()
			fullSoftwareContext.Output = os.Stdout
			fullSoftwareContext.Format = software.NewFullSoftwareFormat(
				viper.GetString("output"))
			fullSoftwareContext.SetFullSoftware(record)
			if err := fullSoftwareContext.Write(); err != nil {
				logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
			}
			return
		}

		softwareCtx := formatter.Context{
			Command: "sync",
			Output:  os.Stdout,
			Format:  software.NewSoftwareFormat(viper.GetString("output")),
		}
		if err := software.Write(softwareCtx, []brigidclient.Software{record}); err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
	},
}

func init() {
	syncSoftwareCmd.Flags().SortFlags = false
}
