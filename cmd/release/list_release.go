package release

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"

	"github.com/caltechads/brigid-cli/cmd/util"
	brigidclient "github.com/caltechads/brigid-cli/internal/client"
	"github.com/caltechads/brigid-cli/internal/formatter"
	"github.com/caltechads/brigid-cli/internal/formatter/release"
)

var listReleaseCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List Brigid release records",
	Long: "List the release records in the Brigid inventory, newest " +
		"release first",
	Example: `brigid releases list --software access_checker`,
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := brigidclient.AuthenticatedAPIClient()

		softwareFilter, err := cmd.Flags().GetString("software")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		releases, err := authAPI.ListReleases(brigidclient.ReleaseListParams{
			Software: softwareFilter,
			Limit:    limit,
		})
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		slices.SortStableFunc(releases, func(x, y brigidclient.Release) int {
			return y.ReleaseTime.Compare(x.ReleaseTime)
		})

		releaseCtx := formatter.Context{
			Command: "list",
			Output:  os.Stdout,
			Format:  release.NewReleaseFormat(viper.GetString("output")),
		}
		// For JSON outputs an empty listing still writes "[]" to stdout,
		// so only the table view short-circuits with a message.
		if len(releases) < 1 && util.IsOutputType(formatter.TableFormatKey) {
			logrus.Infoln("No release records found\n")
			return
		}

		if err := release.Write(releaseCtx, releases); err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
	},
}

func init() {
	listReleaseCmd.Flags().SortFlags = false

	listReleaseCmd.Flags().String("software", "",
		"[Optional] Only list releases of the software record with this "+
			"machine name.")
	listReleaseCmd.Flags().Int("limit", 0,
		"[Optional] Maximum number of records to return. 0 means no limit.")
}
