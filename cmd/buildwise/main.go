// Command buildwise is a construction-material estimation CLI with an
// optional HTTP API (the dashboard subcommand).
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "buildwise",
		Short: "Construction material calculators and cost estimation",
	}

	rootCmd.AddCommand(concreteCmd())
	rootCmd.AddCommand(lumberCmd())
	rootCmd.AddCommand(lumberProjectCmd())
	rootCmd.AddCommand(steelCmd())
	rootCmd.AddCommand(projectCmd())
	rootCmd.AddCommand(aiEstimateCmd())
	rootCmd.AddCommand(settingsCmd())
	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(dashboardCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the buildwise version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("buildwise %s\n", version)
		},
	}
}
