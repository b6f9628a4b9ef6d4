/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/calderops/provar/internal/diff"
	"github.com/spf13/cobra"
)

// diffCmd represents the diff command
var diffCmd = &cobra.Command{
	Use:   "diff <from-environment> <to-environment>",
	Short: "Compare the effective configurations of two environments",
	Long: `Resolve two environments and report every parameter whose effective
value differs between them.

Parameters only present in one environment are shown as added or removed;
parameters present in both with different values are shown as modified.
Both environments must resolve completely before they can be compared.

Examples:
  provar diff staging prod    # What changes between staging and production
  provar diff dev staging     # What a promotion to staging would alter`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fromEnvironment := args[0]
		toEnvironment := args[1]
		ctx := cmd.Context()

		_, from, err := resolveConfiguration(ctx, cmd, fromEnvironment)
		if err != nil {
			return fmt.Errorf("failed to resolve environment %s: %w", fromEnvironment, err)
		}

		_, to, err := resolveConfiguration(ctx, cmd, toEnvironment)
		if err != nil {
			return fmt.Errorf("failed to resolve environment %s: %w", toEnvironment, err)
		}

		result := diff.Compare(from, to)
		fmt.Fprint(cmd.OutOrStdout(), result.Render(newStyles(cmd)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
