package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-demandwizard/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration as YAML",
	Long: `Prints the configuration after flags, environment and config file have been
merged. The output can be saved as demand-wizard.yml. submit_token is never
printed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return config.Encode(cmd.OutOrStdout(), cfg)
	},
}
