package settings

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/caltechads/brigid-cli/internal/formatter"
)

// SettingsCmd prints the fully evaluated CLI configuration
var SettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Print the brigid cli settings",
	Long: "Print the completely evaluated settings to stdout, including values " +
		"imported from the configuration file and from BRIGID_* environment variables.",
	Run: func(cmd *cobra.Command, args []string) {
		evaluated, err := yaml.Marshal(viper.AllSettings())
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		os.Stdout.Write(evaluated)
	},
}
