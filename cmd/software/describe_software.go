package software

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/caltechads/brigid-cli/cmd/util"
	brigidclient "github.com/caltechads/brigid-cli/internal/client"
	"github.com/caltechads/brigid-cli/internal/formatter"
	"github.com/caltechads/brigid-cli/internal/formatter/software"
)

var describeSoftwareCmd = &cobra.Command{
	Use:     "describe IDENTIFIER",
	Aliases: []string{"get", "details"},
	Short:   "Describe a Brigid software record",
	Long: "Describe a software record in the Brigid inventory. " +
		"IDENTIFIER is either a Software.id or a Software.machine_name.",
	Example: `brigid software describe access_checker`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := brigidclient.AuthenticatedAPIClient()

		id, err := authAPI.ResolveSoftwareID(args[0])
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		record, err := authAPI.GetSoftware(id)
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
			Command: "describe",
			Output:  os.Stdout,
			Format:  software.NewSoftwareFormat(viper.GetString("output")),
		}
		if err := software.Write(softwareCtx, []brigidclient.Software{record}); err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
	},
}

func init() {
	describeSoftwareCmd.Flags().SortFlags = false
}
