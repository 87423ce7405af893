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

var importReleaseCmd = &cobra.Command{
	Use:   "import IDENTIFIER VERSION",
	Short: "Import one tagged release into Brigid",
	Long: "Import one tagged release of a software record from its " +
		"upstream git repository. IDENTIFIER is either a Software.id or a " +
		"Software.machine_name, and VERSION is the tag to import.",
	Example: `brigid releases import access_checker 1.2.0`,
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := brigidclient.AuthenticatedAPIClient()

		softwareID, err := authAPI.ResolveSoftwareID(args[0])
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		result, err := authAPI.ImportRelease(softwareID, args[1])
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		verb := "updated"
		if result.Created {
			verb = "created"
		}
		logrus.Info(fmt.Sprintf("The release %s has been imported, release record %s\n",
			formatter.Colorize(
				fmt.Sprintf("%s:%s", args[0], args[1]),
				formatter.GreenColor), verb))

		record, err := authAPI.GetRelease(result.ID)
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
			Command: "import",
			Output:  os.Stdout,
			Format:  release.NewReleaseFormat(viper.GetString("output")),
		}
		if err := release.Write(releaseCtx, []brigidclient.Release{record}); err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
	},
}

var importAllReleasesCmd = &cobra.Command{
	Use:   "import-all IDENTIFIER",
	Short: "Import every tagged release into Brigid",
	Long: "Import every tagged release of a software record from its " +
		"upstream git repository, skipping the tags that are already " +
		"release records. IDENTIFIER is either a Software.id or a " +
		"Software.machine_name. Walking the upstream tags can take a few " +
		"minutes on repositories with a long history.",
	Example: `brigid releases import-all access_checker`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := brigidclient.AuthenticatedAPIClient()

		softwareID, err := authAPI.ResolveSoftwareID(args[0])
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		result, err := authAPI.ImportAllReleases(softwareID)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		logrus.Info(fmt.Sprintf(
			"Imported %s releases for %s, skipped %d already imported\n",
			formatter.Colorize(fmt.Sprintf("%d", result.Imported), formatter.GreenColor),
			formatter.Colorize(args[0], formatter.GreenColor),
			result.Skipped))
	},
}

func init() {
	importReleaseCmd.Flags().SortFlags = false
	importAllReleasesCmd.Flags().SortFlags = false
}
