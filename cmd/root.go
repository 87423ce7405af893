package cmd

import (
	"os"
	"path/filepath"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/caltechads/brigid-cli/cmd/auth"
	"github.com/caltechads/brigid-cli/cmd/release"
	"github.com/caltechads/brigid-cli/cmd/settings"
	"github.com/caltechads/brigid-cli/cmd/software"
	"github.com/caltechads/brigid-cli/internal/formatter"
	"github.com/caltechads/brigid-cli/internal/log"
)

var (
	cfgFile      string
	cfgDirectory string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "brigid",
	Short: "brigid - Command line client for the Brigid software inventory.",
	Long: `
	Brigid tracks the software we maintain: what it is, who wrote it, where
	its repository lives, and what releases have been cut. The Brigid CLI
	provides ease of access via the command line.`,

	Run: func(cmd *cobra.Command, args []string) {
		banner := figure.NewFigure("brigid", "", true)
		banner.Print()
		logrus.Printf("\n")
		cmd.Help()
	},
}

// called on module init
func init() {
	cobra.OnInitialize(initConfig)
	cobra.EnableCaseInsensitive = true

	setDefaults()
	rootCmd.PersistentFlags().SortFlags = false
	rootCmd.PersistentFlags().StringVar(&cfgDirectory, "directory", "",
		"Directory containing Brigid CLI configuration. "+
			"If specified, the CLI will look for a configuration file named "+
			"'.brigid-cli.yaml' in this directory. Defaults to '$HOME/.brigid-cli/'.")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Full path to a specific configuration file for the Brigid CLI. "+
			"If provided, this takes precedence over the directory specified via "+
			"--directory. Defaults to '$HOME/.brigid-cli/.brigid-cli.yaml'.")
	rootCmd.PersistentFlags().StringP("host", "H", "https://brigid-prod.api.caltech.edu",
		"Brigid API host")
	rootCmd.PersistentFlags().StringP("apiToken", "a", "", "Brigid API token.")
	rootCmd.PersistentFlags().StringP("output", "o", formatter.TableFormatKey,
		"Select the desired output format. Allowed values: table, json, pretty.")
	rootCmd.PersistentFlags().StringP("logLevel", "l", "info",
		"Select the desired log level format. Allowed values: debug, info, warn, error, fatal.")
	rootCmd.PersistentFlags().Bool("debug", false, "Use debug mode, same as --logLevel debug.")
	rootCmd.PersistentFlags().
		Bool("disable-color", false, "Disable colors in output. (default false)")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second,
		"API request timeout, example: 30s, 5m.")

	// Bind persistent flags to viper
	viper.BindPFlag("host", rootCmd.PersistentFlags().Lookup("host"))
	viper.BindPFlag("apiToken", rootCmd.PersistentFlags().Lookup("apiToken"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("logLevel", rootCmd.PersistentFlags().Lookup("logLevel"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("disable-color", rootCmd.PersistentFlags().Lookup("disable-color"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))

	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(settings.SettingsCmd)
	rootCmd.AddCommand(software.SoftwareCmd)
	rootCmd.AddCommand(release.ReleasesCmd)

	addGroupsCmd(rootCmd)
}

// Execute commands
func Execute(version string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("Brigid CLI (brigid) version: {{.Version}}\n")
	if err := rootCmd.Execute(); err != nil {
		// Set log level and formatter for this error
		log.SetLogLevel(viper.GetString("logLevel"), viper.GetBool("debug"))
		logrus.Fatal(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
	}
}

func setDefaults() {
	viper.SetDefault("host", "https://brigid-prod.api.caltech.edu")
	viper.SetDefault("output", formatter.TableFormatKey)
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("debug", false)
	viper.SetDefault("disable-color", false)
	viper.SetDefault("timeout", 30*time.Second)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else if cfgDirectory != "" {
		// Check if the directory exists
		if stat, err := os.Stat(cfgDirectory); err == nil && stat.IsDir() {
			configPath := filepath.Join(cfgDirectory, ".brigid-cli.yaml")
			viper.AddConfigPath(cfgDirectory)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".brigid-cli")
			viper.SetConfigFile(configPath)
		} else {
			logrus.Fatalf("%s",
				formatter.Colorize(
					"Provided configuration directory does not exist: "+cfgDirectory,
					formatter.RedColor,
				))
		}
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		homeDir, err := os.Stat(home)
		if err != nil {
			cobra.CheckErr(err)
		}
		homePerms := homeDir.Mode().Perm()
		os.Mkdir(filepath.Join(home, ".brigid-cli"), homePerms)
		// Search config in home directory with name ".brigid-cli" (without extension).
		viper.AddConfigPath(filepath.Join(home, ".brigid-cli"))
		viper.SetConfigType("yaml")
		viper.SetConfigName(".brigid-cli")
		viper.SetConfigFile(filepath.Join(home, ".brigid-cli", ".brigid-cli.yaml"))
	}

	// Will check every environment variable starting with BRIGID_
	viper.SetEnvPrefix("brigid")
	// Read all environment variables that match BRIGID_ENVNAME
	viper.AutomaticEnv()
	// Set log level and formatter
	log.SetLogLevel(viper.GetString("logLevel"), viper.GetBool("debug"))
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		logrus.Debugf("Using config file: %s\n", viper.ConfigFileUsed())
	}
}

func addGroupsCmd(rootCmd *cobra.Command) {
	rootCmd.AddGroup(
		&cobra.Group{
			ID:    "configuration",
			Title: "Configuration Commands",
		},
	)

	auth.AuthCmd.GroupID = "configuration"
	settings.SettingsCmd.GroupID = "configuration"

	rootCmd.AddGroup(
		&cobra.Group{
			ID:    "inventory",
			Title: "Inventory Commands",
		},
	)

	software.SoftwareCmd.GroupID = "inventory"
	release.ReleasesCmd.GroupID = "inventory"
}
