/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package file

import (
	"testing"

	"github.com/calderops/provar/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestYamlValue_UnmarshalScalarString(t *testing.T) {
	var v yamlValue
	require.NoError(t, yaml.Unmarshal([]byte(`t2.micro`), &v))

	assert.Equal(t, model.StringKind, v.value.Kind)
	assert.Equal(t, "t2.micro", v.value.StringVal())
}

func TestYamlValue_UnmarshalQuotedNumberStaysString(t *testing.T) {
	var v yamlValue
	require.NoError(t, yaml.Unmarshal([]byte(`"42"`), &v))

	assert.Equal(t, model.StringKind, v.value.Kind)
	assert.Equal(t, "42", v.value.StringVal())
}

func TestYamlValue_UnmarshalNumbers(t *testing.T) {
	var v yamlValue
	require.NoError(t, yaml.Unmarshal([]byte(`42`), &v))
	assert.Equal(t, model.NumberKind, v.value.Kind)
	assert.Equal(t, float64(42), v.value.NumberVal())

	require.NoError(t, yaml.Unmarshal([]byte(`0.25`), &v))
	assert.Equal(t, model.NumberKind, v.value.Kind)
	assert.Equal(t, 0.25, v.value.NumberVal())
}

func TestYamlValue_UnmarshalNestedMap(t *testing.T) {
	var v yamlValue
	require.NoError(t, yaml.Unmarshal([]byte("tier: private\nzone: a\n"), &v))

	assert.Equal(t, model.MapKind, v.value.Kind)
	assert.Equal(t, map[string]string{"tier": "private", "zone": "a"}, v.value.MapVal())
}

func TestYamlValue_RejectsSequences(t *testing.T) {
	var v yamlValue
	err := yaml.Unmarshal([]byte("- a\n- b\n"), &v)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a string, a number or a map")
}

func TestYamlParameterMap_ToParameterMap(t *testing.T) {
	raw := `
default: ami-0abcdef
prod: ami-0fedcba
`
	var ypm yamlParameterMap
	require.NoError(t, yaml.Unmarshal([]byte(raw), &ypm))

	pm := ypm.toParameterMap("ami-id")

	assert.Equal(t, "ami-id", pm.Name)
	require.NotNil(t, pm.Fallback)
	assert.Equal(t, "ami-0abcdef", pm.Fallback.StringVal())
	require.Len(t, pm.Values, 1)
	assert.Equal(t, "ami-0fedcba", pm.Values["prod"].StringVal())
}
