/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package resolve computes the effective configuration for one active
// environment from a set of per-environment parameter maps.
package resolve

import (
	"fmt"

	"github.com/calderops/provar/internal/model"
	"github.com/calderops/provar/internal/registry"
)

// Resolver produces the effective configuration for an active environment
type Resolver interface {
	// Resolve performs a lookup in every parameter map for the given
	// environment and collects the results into a flat configuration
	Resolve(environment string, maps []*ParameterMap) (*model.ResolvedConfiguration, error)
}

// EnvironmentResolver implements Resolver against an environment registry
type EnvironmentResolver struct {
	registry *registry.Registry
}

// NewEnvironmentResolver creates a resolver validating environments against
// the given registry
func NewEnvironmentResolver(reg *registry.Registry) *EnvironmentResolver {
	return &EnvironmentResolver{registry: reg}
}

// Resolve computes the effective configuration for the active environment.
// It fails fast with UnknownEnvironmentError before any lookup is attempted,
// and propagates the first MissingParameterError it encounters: resolution is
// total over the declared parameter set, so either every map contributes
// exactly one value or no configuration is produced. Parameter maps carry no
// inter-parameter dependencies, so evaluation order is irrelevant.
func (r *EnvironmentResolver) Resolve(environment string, maps []*ParameterMap) (*model.ResolvedConfiguration, error) {
	if !r.registry.IsValid(environment) {
		return nil, &UnknownEnvironmentError{Environment: environment}
	}

	values := make(map[string]model.Value, len(maps))
	for _, pm := range maps {
		if _, exists := values[pm.Name]; exists {
			return nil, fmt.Errorf("parameter %q declared more than once", pm.Name)
		}
		value, err := pm.Lookup(environment)
		if err != nil {
			return nil, err
		}
		values[pm.Name] = value
	}

	return model.NewResolvedConfiguration(environment, values), nil
}
