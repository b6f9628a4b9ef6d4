/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package file contains types and structures specific to the file-based
// configuration provider. These types represent the raw YAML structure before
// it is turned into registry, parameter map and schema instances.
package file

import (
	"fmt"

	"github.com/calderops/provar/internal/model"
	"github.com/calderops/provar/internal/registry"
	"github.com/calderops/provar/internal/resolve"
	"gopkg.in/yaml.v3"
)

// Config represents the raw YAML configuration file structure
// used for parsing the provar.yaml file before resolution
type Config struct {
	Project      string                      `yaml:"project"`
	Region       string                      `yaml:"region"`
	Template     string                      `yaml:"template"`
	Tags         map[string]string           `yaml:"tags"`
	Environments []string                    `yaml:"environments"`
	Parameters   map[string]yamlParameterMap `yaml:"parameters"`
	Schema       map[string]string           `yaml:"schema"`
}

// yamlParameterMap maps environment names (or the reserved fallback key) to
// parameter values as they appear in YAML
type yamlParameterMap map[string]*yamlValue

// toParameterMap converts the raw YAML mapping into a resolve.ParameterMap,
// splitting off the reserved fallback entry
func (ypm yamlParameterMap) toParameterMap(name string) *resolve.ParameterMap {
	values := make(map[string]model.Value, len(ypm))
	pm := resolve.NewParameterMap(name, values)
	for key, value := range ypm {
		if key == registry.FallbackName {
			pm.WithFallback(value.value)
			continue
		}
		values[key] = value.value
	}
	return pm
}

// yamlValue represents a scalar or nested-map parameter value (YAML-specific)
type yamlValue struct {
	value model.Value
}

// UnmarshalYAML implements custom YAML unmarshalling for yamlValue.
// Scalars become string or number values depending on the YAML tag;
// mappings become nested string maps.
func (v *yamlValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!int", "!!float":
			var n float64
			if err := node.Decode(&n); err != nil {
				return fmt.Errorf("failed to parse numeric value: %w", err)
			}
			v.value = model.NumberValue(n)
		default:
			v.value = model.StringValue(node.Value)
		}
		return nil

	case yaml.MappingNode:
		var nested map[string]string
		if err := node.Decode(&nested); err != nil {
			return fmt.Errorf("nested parameter values must map strings to strings: %w", err)
		}
		v.value = model.MapValue(nested)
		return nil

	default:
		return fmt.Errorf("parameter value must be a string, a number or a map of strings")
	}
}

// MarshalYAML implements custom YAML marshalling for yamlValue
func (v *yamlValue) MarshalYAML() (interface{}, error) {
	return v.value.Data(), nil
}
