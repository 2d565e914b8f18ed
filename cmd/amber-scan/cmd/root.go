// Package cmd implements the CLI commands for amber-scan.
package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile      string
	apiURL       string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "amber-scan",
	Short: "Electricity price alerts for Amber Electric customers",
	Long: "A service that polls Amber Electric prices for registered users and " +
		"sends email alerts when price or renewables thresholds are crossed, " +
		"subject to per-user quiet hours and a cooldown period.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// Secrets referenced from config via ${VAR} expansion may live
		// in a local .env file. Missing file is fine.
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().
		StringVar(&apiURL, "api-url", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		StringVar(&outputFormat, "output", "table", "output format (table, json)")

	rootCmd.AddCommand(settingsCmd())
	rootCmd.AddCommand(priceCmd())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
