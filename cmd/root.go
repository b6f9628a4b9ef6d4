/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "provar",
	Short: "A command-line tool for environment-scoped infrastructure parameters",
	Long: `Provar resolves environment-scoped infrastructure parameters before anything
is provisioned:

• Declarative environments and parameter maps in a YAML file
• Deterministic resolution with declared fallbacks
• Schema validation that reports every violation at once
• Provisioning handoff to AWS CloudFormation

Use provar to inspect, validate, and provision the effective configuration of
each environment from one consistent, repeatable definition.`,
}

// Root returns the root command for execution by main
func Root() *cobra.Command {
	return rootCmd
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "provar.yaml", "configuration file (default is provar.yaml)")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "AWS profile (overrides ambient credentials)")
	rootCmd.PersistentFlags().String("region", "", "AWS region (overrides config)")
	rootCmd.PersistentFlags().Bool("no-colour", false, "disable coloured output")
}
