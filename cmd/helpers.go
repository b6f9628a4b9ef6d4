/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/calderops/provar/internal/aws"
	"github.com/calderops/provar/internal/config"
	"github.com/calderops/provar/internal/config/file"
	"github.com/calderops/provar/internal/model"
	"github.com/calderops/provar/internal/report"
	"github.com/calderops/provar/internal/resolve"
	"github.com/spf13/cobra"
)

var (
	// provider can be injected for testing
	provider config.ConfigProvider

	// resolver can be injected for testing
	resolver resolve.Resolver
)

// SetConfigProvider allows injection of a config provider (for testing)
func SetConfigProvider(p config.ConfigProvider) {
	provider = p
}

// SetResolver allows injection of a resolver (for testing)
func SetResolver(r resolve.Resolver) {
	resolver = r
}

// getConfigProvider returns the config provider, creating the file-based
// default if none is set
func getConfigProvider(cmd *cobra.Command) config.ConfigProvider {
	if provider != nil {
		return provider
	}

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" || configFile == file.DefaultConfigFile {
		return file.NewDefaultProvider()
	}
	return file.NewProvider(configFile)
}

// getResolver returns the resolver instance, creating a default one bound to
// the configuration's registry if none is set
func getResolver(cfg *config.Config) resolve.Resolver {
	if resolver != nil {
		return resolver
	}
	return resolve.NewEnvironmentResolver(cfg.Registry)
}

// resolveConfiguration loads the configuration and resolves it for one environment
func resolveConfiguration(ctx context.Context, cmd *cobra.Command, environment string) (*config.Config, *model.ResolvedConfiguration, error) {
	cfg, err := getConfigProvider(cmd).Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	resolved, err := getResolver(cfg).Resolve(environment, cfg.Parameters)
	if err != nil {
		return nil, nil, err
	}
	return cfg, resolved, nil
}

// newStyles creates output styles, honouring the --no-colour flag
func newStyles(cmd *cobra.Command) *report.Styles {
	noColour, _ := cmd.Flags().GetBool("no-colour")
	return report.NewStyles(!noColour)
}

// newRenderer creates the output renderer, honouring the --no-colour flag
func newRenderer(cmd *cobra.Command) *report.Renderer {
	return report.NewRenderer(newStyles(cmd))
}

// regionFor returns the AWS region for provisioning: the --region flag when
// given, otherwise the configured default
func regionFor(cmd *cobra.Command, cfg *config.Config) string {
	if region, _ := cmd.Flags().GetString("region"); region != "" {
		return region
	}
	return cfg.Region
}

// newClientFactory creates an AWS client factory carrying the --profile flag
func newClientFactory(cmd *cobra.Command) aws.ClientFactory {
	profile, _ := cmd.Flags().GetString("profile")
	return aws.NewClientFactory(aws.Config{Profile: profile})
}
