package release

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/caltechads/brigid-cli/cmd/util"
	brigidclient "github.com/caltechads/brigid-cli/internal/client"
	"github.com/caltechads/brigid-cli/internal/formatter"
	"github.com/caltechads/brigid-cli/internal/formatter/release"
)

var syncReleaseCmd = &cobra.Command{
	Use:   "sync IDENTIFIER",
	Short: "Re-sync a Brigid release record",
	Long: "Re-sync a release record from its upstream git repository, " +
		"refreshing the fields Brigid mirrors from the tag. IDENTIFIER is " +
		"either a Release.id or a \"machine_name:version\" pair.",
	Example: `brigid releases sync access_checker:1.2.0`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := brigidclient.AuthenticatedAPIClient()

		id, err := authAPI.ResolveReleaseID(args[0])
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		syncedID, err := authAPI.SyncRelease(id)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		logrus.Info(fmt.Sprintf("The release %s has been synced\n",
			formatter.Colorize(args[0], formatter.GreenColor)))

		record, err := authAPI.GetRelease(syncedID)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		if util.IsOutputType(formatter.TableFormatKey) {
			fullReleaseContext := *release.NewFullReleaseContext()
			fullReleaseContext.Output = os.Stdout
			fullReleaseContext.Format = release.NewFullReleaseFormat(
				viper.GetString("output"))
			fullReleaseContext.SetFullRelease(record)
			if err := fullReleaseContext.Write(); err != nil {
				logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
			}
			return
		}

		releaseCtx := formatter.Context{
			Command: "sync",
			Output:  os.Stdout,
			Format:  release.NewReleaseFormat(viper.GetString("output")),
		}
		if err := release.Write(releaseCtx, []brigidclient.Release{record}); err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
	},
}

func init() {
	syncReleaseCmd.Flags().SortFlags = false
}
