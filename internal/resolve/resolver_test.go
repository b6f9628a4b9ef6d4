/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package resolve

import (
	"errors"
	"testing"

	"github.com/calderops/provar/internal/model"
	"github.com/calderops/provar/internal/registry"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.New([]string{"dev", "staging", "prod"})
	require.NoError(t, err)
	return reg
}

func instanceTypeMap() *ParameterMap {
	return NewParameterMap("instance-type", map[string]model.Value{
		"dev":     model.StringValue("t2.micro"),
		"staging": model.StringValue("t2.medium"),
		"prod":    model.StringValue("t2.xlarge"),
	})
}

func TestResolve_SingleMapScenario(t *testing.T) {
	// registry = {dev, staging, prod}; resolve("staging") -> t2.medium
	resolver := NewEnvironmentResolver(newTestRegistry(t))

	cfg, err := resolver.Resolve("staging", []*ParameterMap{instanceTypeMap()})
	require.NoError(t, err)

	require.Equal(t, 1, cfg.Len())
	value, ok := cfg.Get("instance-type")
	require.True(t, ok)
	assert.Equal(t, "t2.medium", value.StringVal())
	assert.Equal(t, "staging", cfg.Environment())
}

func TestResolve_UnknownEnvironmentFailsFast(t *testing.T) {
	// "qa" is not registered, so no partial configuration may be produced
	resolver := NewEnvironmentResolver(newTestRegistry(t))

	cfg, err := resolver.Resolve("qa", []*ParameterMap{instanceTypeMap()})
	require.Error(t, err)
	assert.Nil(t, cfg)

	var unknown *UnknownEnvironmentError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "qa", unknown.Environment)
}

func TestResolve_MissingParameterWithoutFallback(t *testing.T) {
	resolver := NewEnvironmentResolver(newTestRegistry(t))
	amiID := NewParameterMap("ami-id", map[string]model.Value{
		"dev":  model.StringValue("ami-1"),
		"prod": model.StringValue("ami-2"),
	})

	cfg, err := resolver.Resolve("staging", []*ParameterMap{amiID})
	require.Error(t, err)
	assert.Nil(t, cfg)

	var missing *MissingParameterError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "ami-id", missing.Parameter)
	assert.Equal(t, "staging", missing.Environment)
}

func TestResolve_IsTotalOverDeclaredParameters(t *testing.T) {
	resolver := NewEnvironmentResolver(newTestRegistry(t))
	maps := []*ParameterMap{
		instanceTypeMap(),
		NewParameterMap("ami-id", nil).WithFallback(model.StringValue("ami-0abcdef")),
		NewParameterMap("node-count", map[string]model.Value{
			"dev":     model.NumberValue(1),
			"staging": model.NumberValue(2),
			"prod":    model.NumberValue(5),
		}),
	}

	cfg, err := resolver.Resolve("prod", maps)
	require.NoError(t, err)

	assert.Equal(t, []string{"ami-id", "instance-type", "node-count"}, cfg.Names())

	nodeCount, ok := cfg.Get("node-count")
	require.True(t, ok)
	assert.Equal(t, float64(5), nodeCount.NumberVal())
}

func TestResolve_OneFailingMapFailsWholeResolution(t *testing.T) {
	resolver := NewEnvironmentResolver(newTestRegistry(t))
	maps := []*ParameterMap{
		instanceTypeMap(),
		NewParameterMap("ami-id", nil), // no entries, no fallback
	}

	cfg, err := resolver.Resolve("dev", maps)
	require.Error(t, err)
	assert.Nil(t, cfg, "failed resolution must not yield a partial configuration")
}

func TestResolve_RejectsDuplicateParameterNames(t *testing.T) {
	resolver := NewEnvironmentResolver(newTestRegistry(t))
	maps := []*ParameterMap{instanceTypeMap(), instanceTypeMap()}

	_, err := resolver.Resolve("dev", maps)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than once")
}

func TestResolve_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	environments := []string{"dev", "staging", "prod"}
	genEnvironment := gen.OneConstOf("dev", "staging", "prod")

	properties.Property("resolve of a single map equals its lookup", prop.ForAll(
		func(environment, devValue, stagingValue, prodValue string) bool {
			reg, err := registry.New(environments)
			if err != nil {
				return false
			}
			pm := NewParameterMap("p", map[string]model.Value{
				"dev":     model.StringValue(devValue),
				"staging": model.StringValue(stagingValue),
				"prod":    model.StringValue(prodValue),
			})

			want, err := pm.Lookup(environment)
			if err != nil {
				return false
			}

			cfg, err := NewEnvironmentResolver(reg).Resolve(environment, []*ParameterMap{pm})
			if err != nil {
				return false
			}
			got, ok := cfg.Get("p")
			return ok && got.Equal(want)
		},
		genEnvironment,
		gen.AnyString(),
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.Property("resolve is idempotent", prop.ForAll(
		func(environment, value, fallback string) bool {
			reg, err := registry.New(environments)
			if err != nil {
				return false
			}
			maps := []*ParameterMap{
				NewParameterMap("a", map[string]model.Value{environment: model.StringValue(value)}),
				NewParameterMap("b", nil).WithFallback(model.StringValue(fallback)),
			}
			resolver := NewEnvironmentResolver(reg)

			first, err := resolver.Resolve(environment, maps)
			if err != nil {
				return false
			}
			second, err := resolver.Resolve(environment, maps)
			if err != nil {
				return false
			}

			if first.Len() != second.Len() {
				return false
			}
			for _, name := range first.Names() {
				firstValue, _ := first.Get(name)
				secondValue, _ := second.Get(name)
				if !firstValue.Equal(secondValue) {
					return false
				}
			}
			return true
		},
		genEnvironment,
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.Property("unregistered environments always fail", prop.ForAll(
		func(environment string) bool {
			for _, registered := range environments {
				if environment == registered {
					return true
				}
			}
			reg, err := registry.New(environments)
			if err != nil {
				return false
			}

			cfg, err := NewEnvironmentResolver(reg).Resolve(environment, []*ParameterMap{instanceTypeMap()})
			if cfg != nil {
				return false
			}
			var unknown *UnknownEnvironmentError
			return errors.As(err, &unknown) && unknown.Environment == environment
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
