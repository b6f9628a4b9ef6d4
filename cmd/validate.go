/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/calderops/provar/internal/schema"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <environment>",
	Short: "Validate the resolved configuration against the schema",
	Long: `Resolve the configuration for one environment and validate it against
the declared schema.

Validation checks that every required parameter is present, that each value
has its declared shape, and that no undeclared parameters have crept in. All
violations are collected and reported in a single pass, so everything wrong
can be fixed at once before any provisioning is attempted.

Examples:
  provar validate dev           # Validate the dev configuration
  provar validate prod          # Validate production before provisioning`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		environment := args[0]
		ctx := cmd.Context()

		cfg, resolved, err := resolveConfiguration(ctx, cmd, environment)
		if err != nil {
			return fmt.Errorf("failed to resolve environment %s: %w", environment, err)
		}

		result := schema.Validate(resolved, cfg.Schema)
		fmt.Fprint(cmd.OutOrStdout(), newRenderer(cmd).ValidationSummary(environment, result))

		if !result.Valid() {
			return fmt.Errorf("configuration for environment %s has %d violation(s)", environment, len(result.Violations))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
