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

var updateReleaseCmd = &cobra.Command{
	Use:     "update IDENTIFIER",
	Aliases: []string{"edit"},
	Short:   "Update a Brigid release record",
	Long: "Update the editable fields of a release record in the Brigid " +
		"inventory. IDENTIFIER is either a Release.id or a " +
		"\"machine_name:version\" pair.",
	Example: `brigid releases update access_checker:1.2.0 --changelog "$(cat CHANGELOG)"`,
	Args:    cobra.ExactArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("sha") && !cmd.Flags().Changed("changelog") {
			cmd.Help()
			logrus.Fatalln(
				formatter.Colorize("No fields found to update\n", formatter.RedColor))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := brigidclient.AuthenticatedAPIClient()

		id, err := authAPI.ResolveReleaseID(args[0])
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		attrs := map[string]interface{}{}
		if cmd.Flags().Changed("sha") {
			sha, err := cmd.Flags().GetString("sha")
			if err != nil {
				logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
			}
			attrs["sha"] = sha
		}
		if cmd.Flags().Changed("changelog") {
			changelog, err := cmd.Flags().GetString("changelog")
			if err != nil {
				logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
			}
			attrs["changelog"] = changelog
		}

		record, err := authAPI.UpdateRelease(id, attrs)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		logrus.Info(fmt.Sprintf("The release %s has been updated\n",
			formatter.Colorize(
				fmt.Sprintf("%s:%s", record.Software, record.Version),
				formatter.GreenColor)))

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
			Command: "update",
			Output:  os.Stdout,
			Format:  release.NewReleaseFormat(viper.GetString("output")),
		}
		if err := release.Write(releaseCtx, []brigidclient.Release{record}); err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
	},
}

func init() {
	updateReleaseCmd.Flags().SortFlags = false

	updateReleaseCmd.Flags().String("sha", "",
		"[Optional] New git SHA for the release.")
	updateReleaseCmd.Flags().String("changelog", "",
		"[Optional] New changelog text for the release.")
}
