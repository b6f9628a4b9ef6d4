/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/calderops/provar/internal/prompt"
	"github.com/calderops/provar/internal/provision"
	"github.com/calderops/provar/internal/schema"
	"github.com/spf13/cobra"
)

var (
	// provisioner can be injected for testing
	provisioner provision.Provisioner
)

// provisionCmd represents the provision command
var provisionCmd = &cobra.Command{
	Use:   "provision <environment>",
	Short: "Provision an environment's stack from its resolved configuration",
	Long: `Resolve and validate the configuration for one environment, then hand
it to AWS CloudFormation.

The command refuses to proceed when validation fails, and prompts for
confirmation before any change is applied. The provisioning template is
rendered with the resolved parameter values; scalar values are additionally
passed as stack parameters.

Examples:
  provar provision dev          # Provision the dev stack after confirmation
  provar provision prod         # Provision production`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		environment := args[0]
		ctx := cmd.Context()

		cfg, resolved, err := resolveConfiguration(ctx, cmd, environment)
		if err != nil {
			return fmt.Errorf("failed to resolve environment %s: %w", environment, err)
		}

		result := schema.Validate(resolved, cfg.Schema)
		if !result.Valid() {
			fmt.Fprint(cmd.OutOrStdout(), newRenderer(cmd).ValidationSummary(environment, result))
			return fmt.Errorf("refusing to provision environment %s: configuration failed validation", environment)
		}

		stackName := cfg.StackName(environment)
		confirmed, err := prompt.ConfirmProvision(stackName, environment)
		if err != nil {
			return fmt.Errorf("failed to confirm provisioning: %w", err)
		}
		if !confirmed {
			fmt.Fprintln(cmd.OutOrStdout(), "Provisioning cancelled")
			return nil
		}

		err = getProvisioner(cmd).Provision(ctx, provision.Input{
			StackName:     stackName,
			Region:        regionFor(cmd, cfg),
			TemplateURI:   cfg.Template,
			Configuration: resolved,
			Validation:    result,
			Tags:          cfg.Tags,
		})
		if err != nil {
			return fmt.Errorf("error provisioning stack %s: %w", stackName, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Successfully provisioned stack %s for environment %s\n", stackName, environment)
		return nil
	},
}

// getProvisioner returns the provisioner instance, creating a default one if none is set
func getProvisioner(cmd *cobra.Command) provision.Provisioner {
	if provisioner != nil {
		return provisioner
	}
	return provision.NewStackProvisioner(newClientFactory(cmd))
}

// SetProvisioner allows injection of a provisioner (for testing)
func SetProvisioner(p provision.Provisioner) {
	provisioner = p
}

func init() {
	rootCmd.AddCommand(provisionCmd)
}
