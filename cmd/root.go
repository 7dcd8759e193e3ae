// Package cmd provides the pkgstrap command-line interface.
//
// Configuration precedence, highest first:
//  1. Command-line flags (--module, --license, ...)
//  2. PKGSTRAP_CONFIG_FILE environment variable (custom config path)
//  3. Individual PKGSTRAP_* environment variables
//  4. .pkgstrap.yml in the current directory
package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pkgstrap/pkgstrap/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "pkgstrap",
	Short: "Bootstrap a new Go package",
	Long: `pkgstrap bootstraps a new Go package: it renders a template set into
a fresh project directory, initializes version control, installs linters,
and then deletes itself. It is a one-shot tool; once your project exists
there is nothing left for it to do.

Quick start:
  pkgstrap new widget --module github.com/you/widget
  pkgstrap preview LICENSE.tmpl --data license=MIT`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .pkgstrap.yml, can also use PKGSTRAP_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig wires viper to the config file and PKGSTRAP_* environment
// variables. A missing config file is not an error.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("PKGSTRAP_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".pkgstrap")
	}

	viper.SetEnvPrefix("PKGSTRAP")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Missing or malformed config files degrade to defaults.
	_ = viper.ReadInConfig()
}

// newLogger builds the logger shared by the commands from the resolved
// log level.
func newLogger(level string) logging.Logger {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(level)
	return logging.NewLogger(cfg)
}
