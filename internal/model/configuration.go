/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package model

import "sort"

// ResolvedConfiguration is the effective parameter set for one environment.
// It is created fresh on each resolution and is immutable once produced:
// the values map is copied on construction and never exposed directly.
type ResolvedConfiguration struct {
	environment string
	values      map[string]Value
}

// NewResolvedConfiguration creates a resolved configuration for the given
// environment, copying the supplied values
func NewResolvedConfiguration(environment string, values map[string]Value) *ResolvedConfiguration {
	copied := make(map[string]Value, len(values))
	for name, value := range values {
		copied[name] = value
	}
	return &ResolvedConfiguration{
		environment: environment,
		values:      copied,
	}
}

// Environment returns the environment this configuration was resolved for
func (rc *ResolvedConfiguration) Environment() string {
	return rc.environment
}

// Get returns the value for the named parameter and whether it exists
func (rc *ResolvedConfiguration) Get(name string) (Value, bool) {
	value, ok := rc.values[name]
	return value, ok
}

// Names returns all parameter names in sorted order
func (rc *ResolvedConfiguration) Names() []string {
	names := make([]string, 0, len(rc.values))
	for name := range rc.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of resolved parameters
func (rc *ResolvedConfiguration) Len() int {
	return len(rc.values)
}

// AsTemplateData returns the configuration as template data, keyed by
// parameter name with values in their native shapes
func (rc *ResolvedConfiguration) AsTemplateData() map[string]interface{} {
	data := make(map[string]interface{}, len(rc.values))
	for name, value := range rc.values {
		data[name] = value.Data()
	}
	return data
}
