package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "arrhub",
	Short: "Unified CLI for your movie and series managers",
	Long: `arrhub - one front door for Radarr- and Sonarr-compatible backends

Search both libraries, check whether something is on disk or still
downloading, request new items, and inspect backend health - without
caring which backend owns what.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("arrhub {{.Version}}\n")
}
