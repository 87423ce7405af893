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

var updateSoftwareCmd = &cobra.Command{
	Use:     "update IDENTIFIER",
	Aliases: []string{"edit"},
	Short:   "Update a Brigid software record",
	Long: "Update the editable fields of a software record in the Brigid " +
		"inventory. IDENTIFIER is either a Software.id or a Software.machine_name. " +
		"Fields owned by the upstream git provider are updated with " +
		"\"brigid software sync\" instead.",
	Example: `brigid software update access_checker --trello-board-url https://trello.com/b/abcd1234`,
	Args:    cobra.ExactArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("name") &&
			!cmd.Flags().Changed("trello-board-url") &&
			!cmd.Flags().Changed("documentation-url") {
			cmd.Help()
			logrus.Fatalln(
				formatter.Colorize("No fields found to update\n", formatter.RedColor))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := brigidclient.AuthenticatedAPIClient()

		id, err := authAPI.ResolveSoftwareID(args[0])
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		attrs := map[string]interface{}{}
		if cmd.Flags().Changed("name") {
			name, err := cmd.Flags().GetString("name")
			if err != nil {
				logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
			}
			attrs["name"] = name
		}
		if cmd.Flags().Changed("trello-board-url") {
			trelloBoardURL, err := cmd.Flags().GetString("trello-board-url")
			if err != nil {
				logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
			}
			attrs["trello_board_url"] = trelloBoardURL
		}
		if cmd.Flags().Changed("documentation-url") {
			documentationURL, err := cmd.Flags().GetString("documentation-url")
			if err != nil {
				logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
			}
			attrs["documentation_url"] = documentationURL
		}

		record, err := authAPI.UpdateSoftware(id, attrs)
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		logrus.Info(fmt.Sprintf("The software record %s has been updated\n",
			formatter.Colorize(record.MachineName, formatter.GreenColor)))

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
			Command: "update",
			Output:  os.Stdout,
			Format:  software.NewSoftwareFormat(viper.GetString("output")),
		}
		if err := software.Write(softwareCtx, []brigidclient.Software{record}); err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
	},
}

func init() {
	updateSoftwareCmd.Flags().SortFlags = false

	updateSoftwareCmd.Flags().String("name", "",
		"[Optional] New human name for the software record.")
	updateSoftwareCmd.Flags().String("trello-board-url", "",
		"[Optional] URL of the Trello board for this software.")
	updateSoftwareCmd.Flags().String("documentation-url", "",
		"[Optional] URL of the documentation for this software.")
}
