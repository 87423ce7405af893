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

var importSoftwareCmd = &cobra.Command{
	Use:   "import REPOSITORY",
	Short: "Import a git repository into Brigid",
	Long: "Import a git repository into Brigid, creating a software record " +
		"for it. REPOSITORY is either a clone URL or an \"owner/name\" path " +
		"on the configured git provider. If the repository was imported " +
		"before, its software record is refreshed instead.",
	Example: `brigid software import caltechads/access_checker`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := brigidclient.AuthenticatedAPIClient()

		result, err := authAPI.ImportSoftware(args[0])
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		verb := "updated"
		if result.Created {
			verb = "created"
		}
		logrus.Info(fmt.Sprintf("The repository %s has been imported, software record %s\n",
			formatter.Colorize(args[0], formatter.GreenColor), verb))

		record, err := authAPI.GetSoftware(result.ID)
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
			Command: "import",
			Output:  os.Stdout,
			Format:  software.NewSoftwareFormat(viper.GetString("output")),
		}
		if err := software.Write(softwareCtx, []brigidclient.Software{record}); err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
	},
}

func init() {
	importSoftwareCmd.Flags().SortFlags = false
}
