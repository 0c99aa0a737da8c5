package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront catalog server and tooling over a Magento GraphQL backend",
	Long: `storefront normalizes the Magento product graph into listing, facet and
product page payloads and serves them over REST and GraphQL.`,
	SilenceUsage: true,
}

// Execute applies registered commands and runs the root command.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
