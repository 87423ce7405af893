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

var createReleaseCmd = &cobra.Command{
	Use:     "create FILENAME",
	Aliases: []string{"add"},
	Short:   "Create a Brigid release record",
	Long: "Create a release record in the Brigid inventory from a YAML or " +
		"JSON file. The file holds the fields of the release: software, " +
		"version, sha, release_time and changelog. The software field is " +
		"either a Software.id or a Software.machine_name.",
	Example: `brigid releases create release.yaml`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := brigidclient.AuthenticatedAPIClient()

		attrs, err := util.ReadCreateFile(args[0])
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		// the file may name the software by machine name
		if machineName, ok := attrs["software"].(string); ok {
			softwareID, err := authAPI.ResolveSoftwareID(machineName)
			if err != nil {
				logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
			}
			attrs["software"] = softwareID
		}

		record, err := authAPI.CreateRelease(attrs)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		logrus.Info(fmt.Sprintf("The release %s has been created\n",
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
			Command: "create",
			Output:  os.Stdout,
			Format:  release.NewReleaseFormat(viper.GetString("output")),
		}
		if err := release.Write(releaseCtx, []brigidclient.Release{record}); err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
	},
}

func init() {
	createReleaseCmd.Flags().SortFlags = false
}
