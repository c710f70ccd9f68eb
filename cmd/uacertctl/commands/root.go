// Package commands implements the uacertctl CLI commands.
package commands

import (
	"github.com/spf13/cobra"
)

// configPath holds the --config flag shared by every subcommand.
var configPath string

var rootCmd = &cobra.Command{
	Use:   "uacertctl",
	Short: "Manage OPC UA application instance certificates and trust lists",
	Long: `uacertctl generates certificate signing requests, manages trust and
issuer certificate lists, and inspects the security policies this module
implements.

Use "uacertctl [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default: $XDG_CONFIG_HOME/uacore/config.yaml)")

	rootCmd.AddCommand(csrCmd)
	rootCmd.AddCommand(trustCmd)
	rootCmd.AddCommand(policyCmd)
}
