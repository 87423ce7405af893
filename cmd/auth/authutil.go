package auth

import (
	"fmt"
	"net/url"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	brigidclient "github.com/caltechads/brigid-cli/internal/client"
	"github.com/caltechads/brigid-cli/internal/formatter"
)

func authWriteConfigFile(user brigidclient.CurrentUser) {
	err := viper.WriteConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Fprintln(os.Stdout, "No config was found a new one will be created.")
			// Try to create the file
			err = viper.SafeWriteConfig()
			if err != nil {
				logrus.Fatalf(
					formatter.Colorize(
						"Error when writing new config file: "+err.Error()+".\n"+
							"In case of permission errors, please run brigid with the "+
							"--config flag to set the path.\n",
						formatter.RedColor))
			}
		} else {
			logrus.Fatalf(
				formatter.Colorize(
					"Error when writing config file: "+err.Error()+".\n", formatter.RedColor))
		}
	}
	configFileUsed := viper.GetViper().ConfigFileUsed()
	if len(configFileUsed) == 0 {
		configFileUsed = "$HOME/.brigid-cli/.brigid-cli.yaml"
	}
	logrus.Infof(
		formatter.Colorize(
			fmt.Sprintf("Configuration file '%v' successfully updated.\n",
				configFileUsed), formatter.GreenColor))

	logrus.Infof("Authenticated as %s <%s> (%s)\n",
		user.Fullname, user.Email, user.Username)
}

func authUtil(endpoint *url.URL, apiToken string) {
	authAPI, err := brigidclient.NewAuthAPIClientInitialize(endpoint)
	if err != nil {
		logrus.Fatal(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
	}
	user, err := authAPI.Whoami()
	if err != nil {
		logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
	}
	logrus.Debugf("Whoami response without errors\n")

	viper.GetViper().Set("apiToken", apiToken)

	authWriteConfigFile(user)
}
