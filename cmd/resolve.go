/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve <environment>",
	Short: "Resolve the effective configuration for an environment",
	Long: `Resolve every declared parameter for one environment and print the
effective configuration.

Each parameter map contributes the entry for the environment, or its declared
fallback when no entry exists. Resolution fails if the environment is not
registered, or if any parameter has neither an entry nor a fallback.

Examples:
  provar resolve dev          # Effective configuration for dev
  provar resolve prod         # Effective configuration for production`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		environment := args[0]
		ctx := cmd.Context()

		_, resolved, err := resolveConfiguration(ctx, cmd, environment)
		if err != nil {
			return fmt.Errorf("failed to resolve environment %s: %w", environment, err)
		}

		fmt.Fprint(cmd.OutOrStdout(), newRenderer(cmd).Configuration(resolved))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
