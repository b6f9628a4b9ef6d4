/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/calderops/provar/internal/describe"
	"github.com/spf13/cobra"
)

var (
	// describer can be injected for testing
	describer describe.Describer
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status <environment>",
	Short: "Show the deployed stack state for an environment",
	Long: `Show the current state of an environment's stack as deployed in AWS
CloudFormation: status, timestamps, parameters, outputs and tags.

Examples:
  provar status dev           # Deployed state of the dev stack
  provar status prod          # Deployed state of production`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		environment := args[0]
		ctx := cmd.Context()

		cfg, err := getConfigProvider(cmd).Load(ctx)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if !cfg.Registry.IsValid(environment) {
			return fmt.Errorf("environment %q is not registered", environment)
		}

		stackName := cfg.StackName(environment)
		desc, err := getDescriber(cmd).DescribeStack(ctx, stackName, regionFor(cmd, cfg))
		if err != nil {
			return fmt.Errorf("failed to describe stack %s: %w", stackName, err)
		}

		fmt.Fprint(cmd.OutOrStdout(), describe.FormatStackDescription(desc, newStyles(cmd)))
		return nil
	},
}

// getDescriber returns the describer instance, creating a default one if none is set
func getDescriber(cmd *cobra.Command) describe.Describer {
	if describer != nil {
		return describer
	}
	return describe.NewStackDescriber(newClientFactory(cmd))
}

// SetDescriber allows injection of a describer (for testing)
func SetDescriber(d describe.Describer) {
	describer = d
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
