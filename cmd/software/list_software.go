package software

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"

	"github.com/caltechads/brigid-cli/cmd/util"
	brigidclient "github.com/caltechads/brigid-cli/internal/client"
	"github.com/caltechads/brigid-cli/internal/formatter"
	"github.com/caltechads/brigid-cli/internal/formatter/software"
)

var listSoftwareCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List Brigid software records",
	Long:    "List the software records in the Brigid inventory",
	Example: `brigid software list --author-username cmalek`,
	Run: func(cmd *cobra.Command, args []string) {
		authAPI := brigidclient.AuthenticatedAPIClient()

		name, err := cmd.Flags().GetString("name")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		machineName, err := cmd.Flags().GetString("machine-name")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		authorUsername, err := cmd.Flags().GetString("author-username")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		records, err := authAPI.ListSoftware(brigidclient.SoftwareListParams{
			Name:           name,
			MachineName:    machineName,
			AuthorUsername: authorUsername,
			Limit:          limit,
		})
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}

		slices.SortStableFunc(records, func(x, y brigidclient.Software) int {
			return strings.Compare(x.MachineName, y.MachineName)
		})

		softwareCtx := formatter.Context{
			Command: "list",
			Output:  os.Stdout,
			Format:  software.NewSoftwareFormat(viper.GetString("output")),
		}
		// For JSON outputs an empty listing still writes "[]" to stdout,
		// so only the table view short-circuits with a message.
		if len(records) < 1 && util.IsOutputType(formatter.TableFormatKey) {
			logrus.Infoln("No software records found\n")
			return
		}

		if err := software.Write(softwareCtx, records); err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
	},
}

func init() {
	listSoftwareCmd.Flags().SortFlags = false

	listSoftwareCmd.Flags().String("name", "",
		"[Optional] Filter by human name, case insensitive substring match.")
	listSoftwareCmd.Flags().String("machine-name", "",
		"[Optional] Filter by machine name, exact match.")
	listSoftwareCmd.Flags().String("author-username", "",
		"[Optional] Only list software with this author.")
	listSoftwareCmd.Flags().Int("limit", 0,
		"[Optional] Maximum number of records to return. 0 means no limit.")
}
