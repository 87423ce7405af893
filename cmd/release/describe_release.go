package release

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/caltechads/brigid-cli/cmd/util"
	brigidclient "github.com/caltechads/brigid-cli/internal/client"
	"github.com/caltechads/brigid-cli/internal/formatter"
	"github.com/caltechads/brigid-cli/internal/formatter/release"
)

var describeReleaseCmd = &cobra.Command{
	Use:     "describe IDENTIFIER",
	Aliases: []string{"get", "details"},
	Short:   "Describe a Brigid release record",
	Long: "Describe a release record in the Brigid inventory. IDENTIFIER " +
		"is either a Release.id or a \"machine_name:version\" pair.",
	Example: `brigid releases describe access_checker:1.2.0`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := brigidclient.AuthenticatedAPIClient()

		id, err := authAPI.ResolveReleaseID(args[0])
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		record, err := authAPI.GetRelease(id)
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
			Command: "describe",
			Output:  os.Stdout,
			Format:  release.NewReleaseFormat(viper.GetString("output")),
		}
		if err := release.Write(releaseCtx, []brigidclient.Release{record}); err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
	},
}

func init() {
	describeReleaseCmd.Flags().SortFlags = false
}
