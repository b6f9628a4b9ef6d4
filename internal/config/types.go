/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"context"

	"github.com/calderops/provar/internal/registry"
	"github.com/calderops/provar/internal/resolve"
	"github.com/calderops/provar/internal/schema"
)

// ConfigProvider defines the interface for loading configuration
type ConfigProvider interface {
	// Load parses the declarative configuration into registry, parameter
	// maps and schema instances
	Load(ctx context.Context) (*Config, error)

	// ListEnvironments returns all declared environment names in order
	ListEnvironments() ([]string, error)

	// Validate checks the raw configuration for consistency and errors
	Validate() error
}

// Config is the parsed declarative configuration: the inputs the resolution
// core consumes, plus the provisioning metadata handed to the backend
type Config struct {
	Project  string
	Region   string
	Template string // URI to the provisioning template (file://)
	Tags     map[string]string

	Registry   *registry.Registry
	Parameters []*resolve.ParameterMap
	Schema     schema.Schema
}

// StackName derives the provisioned stack name for an environment
func (c *Config) StackName(environment string) string {
	return c.Project + "-" + environment
}
