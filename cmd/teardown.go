/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/calderops/provar/internal/teardown"
	"github.com/spf13/cobra"
)

var (
	// teardowner can be injected for testing
	teardowner teardown.Teardowner
)

// teardownCmd represents the teardown command
var teardownCmd = &cobra.Command{
	Use:   "teardown <environment>",
	Short: "Delete an environment's stack from AWS CloudFormation",
	Long: `Delete the stack provisioned for an environment.

The command prompts for confirmation before anything is deleted; a stack that
does not exist is reported and skipped. Deletion is permanent and removes all
of the stack's resources.

Examples:
  provar teardown dev         # Tear down the dev stack after confirmation`,
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
		err = getTeardowner(cmd).TeardownStack(ctx, teardown.Input{
			StackName:   stackName,
			Environment: environment,
			Region:      regionFor(cmd, cfg),
		})
		if err != nil {
			return fmt.Errorf("error tearing down stack %s: %w", stackName, err)
		}
		return nil
	},
}

// getTeardowner returns the teardowner instance, creating a default one if none is set
func getTeardowner(cmd *cobra.Command) teardown.Teardowner {
	if teardowner != nil {
		return teardowner
	}
	return teardown.NewStackTeardowner(newClientFactory(cmd), cmd.OutOrStdout())
}

// SetTeardowner allows injection of a teardowner (for testing)
func SetTeardowner(td teardown.Teardowner) {
	teardowner = td
}

func init() {
	rootCmd.AddCommand(teardownCmd)
}
