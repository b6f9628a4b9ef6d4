/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// environmentsCmd represents the environments command
var environmentsCmd = &cobra.Command{
	Use:   "environments",
	Short: "List registered environments",
	Long: `List every environment declared in the configuration file, in
declaration order. Only these names can be resolved or provisioned; any other
name is rejected.

Examples:
  provar environments`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		environments, err := getConfigProvider(cmd).ListEnvironments()
		if err != nil {
			return fmt.Errorf("failed to list environments: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), newRenderer(cmd).Environments(environments))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(environmentsCmd)
}
