// Package cmd is for command line interactions with the coral application
package cmd

import (
	"github.com/klavinslab/coral-sub000/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var verbose bool

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "coral",
	Short: `Simulate molecular cloning on double-stranded DNA.
Run PCRs, restriction digests and Gibson assemblies, and design assembly oligos`,
	Version: "0.1.0",
}

func init() {
	cobra.OnInitialize(initSettings)

	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each simulation step")
}

// initSettings loads defaults and the optional config file into Viper.
func initSettings() {
	config.SetDefaults()

	viper.SetConfigName(".coral")
	viper.AddConfigPath("$HOME")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err == nil {
		logrus.WithField("config", viper.ConfigFileUsed()).Debug("read settings")
	}

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
