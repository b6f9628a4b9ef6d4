/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package resolve

import "github.com/calderops/provar/internal/model"

// ParameterMap maps environment names to values for a single named parameter,
// with an optional declared fallback used when an environment has no entry
type ParameterMap struct {
	Name     string
	Values   map[string]model.Value
	Fallback *model.Value
}

// NewParameterMap creates a parameter map with per-environment values and no fallback
func NewParameterMap(name string, values map[string]model.Value) *ParameterMap {
	return &ParameterMap{Name: name, Values: values}
}

// WithFallback returns the parameter map with a declared fallback value
func (pm *ParameterMap) WithFallback(fallback model.Value) *ParameterMap {
	pm.Fallback = &fallback
	return pm
}

// Lookup returns the entry for the given environment if present, otherwise the
// declared fallback. With neither, it returns a MissingParameterError naming
// the parameter and environment. Lookup is a pure function of the map contents
// and its arguments.
func (pm *ParameterMap) Lookup(environment string) (model.Value, error) {
	if value, ok := pm.Values[environment]; ok {
		return value, nil
	}
	if pm.Fallback != nil {
		return *pm.Fallback, nil
	}
	return model.Value{}, &MissingParameterError{
		Parameter:   pm.Name,
		Environment: environment,
	}
}
