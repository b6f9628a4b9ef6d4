/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package registry holds the closed set of environment names a configuration
// declares. Resolution fails closed: any name not in the registry is invalid.
package registry

import "fmt"

// FallbackName is reserved for declared fallback values in parameter maps
// and can therefore never be registered as an environment
const FallbackName = "default"

// Registry is the closed set of valid environment names, in declaration order
type Registry struct {
	names []string
	index map[string]struct{}
}

// New creates a registry from an ordered list of environment names.
// Duplicate names and the reserved fallback name are rejected.
func New(names []string) (*Registry, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("at least one environment must be declared")
	}

	index := make(map[string]struct{}, len(names))
	ordered := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("environment name cannot be empty")
		}
		if name == FallbackName {
			return nil, fmt.Errorf("environment name %q is reserved for fallback values", FallbackName)
		}
		if _, exists := index[name]; exists {
			return nil, fmt.Errorf("environment %q declared more than once", name)
		}
		index[name] = struct{}{}
		ordered = append(ordered, name)
	}

	return &Registry{names: ordered, index: index}, nil
}

// IsValid reports whether the given name is a registered environment
func (r *Registry) IsValid(name string) bool {
	_, ok := r.index[name]
	return ok
}

// List returns all registered environment names in declaration order
func (r *Registry) List() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}
