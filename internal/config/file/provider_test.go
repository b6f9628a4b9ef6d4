/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package file

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/calderops/provar/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "provar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewDefaultProvider_ReadsDefaultConfigFile(t *testing.T) {
	provider := NewDefaultProvider()

	assert.Equal(t, DefaultConfigFile, provider.filename)
}

func TestProvider_Load_ReturnsErrorWhenFileNotFound(t *testing.T) {
	provider := NewProvider("nonexistent-config.yaml")

	cfg, err := provider.Load(context.Background())

	assert.Error(t, err, "should return error when config file doesn't exist")
	assert.Nil(t, cfg, "should return nil config when file doesn't exist")
	assert.Contains(t, err.Error(), "nonexistent-config.yaml", "error should mention the file name")
}

func TestProvider_Load_ParsesBasicConfiguration(t *testing.T) {
	configContent := `
project: web-platform
region: us-east-1
template: templates/stack.yaml

tags:
  Team: platform

environments: [dev, staging, prod]

parameters:
  instance-type:
    dev: t2.micro
    staging: t2.medium
    prod: t2.xlarge
  ami-id:
    default: ami-0abcdef
    prod: ami-0fedcba
  node-count:
    default: 1
    prod: 5
  subnet-tags:
    default:
      tier: private

schema:
  instance-type: string
  ami-id: string
  node-count: number
  subnet-tags: map
`
	tmpFile := createTempConfigFile(t, configContent)

	provider := NewProvider(tmpFile)
	cfg, err := provider.Load(context.Background())
	require.NoError(t, err, "should successfully load valid config file")
	require.NotNil(t, cfg)

	assert.Equal(t, "web-platform", cfg.Project)
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, "platform", cfg.Tags["Team"])
	assert.True(t, strings.HasPrefix(cfg.Template, "file://"), "template should be a file:// URI")
	assert.True(t, strings.HasSuffix(cfg.Template, "templates/stack.yaml"))

	require.NotNil(t, cfg.Registry)
	assert.Equal(t, []string{"dev", "staging", "prod"}, cfg.Registry.List())

	// Parameter maps come back in name order
	require.Len(t, cfg.Parameters, 4)
	assert.Equal(t, "ami-id", cfg.Parameters[0].Name)
	assert.Equal(t, "instance-type", cfg.Parameters[1].Name)
	assert.Equal(t, "node-count", cfg.Parameters[2].Name)
	assert.Equal(t, "subnet-tags", cfg.Parameters[3].Name)

	require.Len(t, cfg.Schema, 4)
}

func TestProvider_Load_SplitsFallbackFromEnvironmentEntries(t *testing.T) {
	configContent := `
project: web-platform
environments: [dev, prod]
parameters:
  ami-id:
    default: ami-0abcdef
    prod: ami-0fedcba
`
	provider := NewProvider(createTempConfigFile(t, configContent))
	cfg, err := provider.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, cfg.Parameters, 1)
	amiID := cfg.Parameters[0]

	require.NotNil(t, amiID.Fallback, "default entry should become the declared fallback")
	assert.Equal(t, "ami-0abcdef", amiID.Fallback.StringVal())

	_, hasDefaultEntry := amiID.Values["default"]
	assert.False(t, hasDefaultEntry, "fallback must not remain an environment entry")

	value, err := amiID.Lookup("dev")
	require.NoError(t, err)
	assert.Equal(t, "ami-0abcdef", value.StringVal())

	value, err = amiID.Lookup("prod")
	require.NoError(t, err)
	assert.Equal(t, "ami-0fedcba", value.StringVal())
}

func TestProvider_Load_ParsesValueShapes(t *testing.T) {
	configContent := `
project: web-platform
environments: [dev]
parameters:
  instance-type:
    dev: t2.micro
  node-count:
    dev: 3
  cpu-share:
    dev: 0.5
  subnet-tags:
    dev:
      tier: private
      zone: a
`
	provider := NewProvider(createTempConfigFile(t, configContent))
	cfg, err := provider.Load(context.Background())
	require.NoError(t, err)

	byName := make(map[string]model.Value)
	for _, pm := range cfg.Parameters {
		value, err := pm.Lookup("dev")
		require.NoError(t, err)
		byName[pm.Name] = value
	}

	assert.Equal(t, model.StringKind, byName["instance-type"].Kind)
	assert.Equal(t, model.NumberKind, byName["node-count"].Kind)
	assert.Equal(t, float64(3), byName["node-count"].NumberVal())
	assert.Equal(t, model.NumberKind, byName["cpu-share"].Kind)
	assert.Equal(t, 0.5, byName["cpu-share"].NumberVal())
	assert.Equal(t, model.MapKind, byName["subnet-tags"].Kind)
	assert.Equal(t, map[string]string{"tier": "private", "zone": "a"}, byName["subnet-tags"].MapVal())
}

func TestProvider_Load_RejectsUndeclaredEnvironmentReference(t *testing.T) {
	configContent := `
project: web-platform
environments: [dev, prod]
parameters:
  instance-type:
    dev: t2.micro
    qa: t2.small
`
	provider := NewProvider(createTempConfigFile(t, configContent))
	cfg, err := provider.Load(context.Background())

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "instance-type")
	assert.Contains(t, err.Error(), "qa")
}

func TestProvider_Load_RejectsReservedEnvironmentName(t *testing.T) {
	configContent := `
project: web-platform
environments: [dev, default]
`
	provider := NewProvider(createTempConfigFile(t, configContent))
	_, err := provider.Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reserved")
}

func TestProvider_Load_RejectsUnknownSchemaShape(t *testing.T) {
	configContent := `
project: web-platform
environments: [dev]
parameters:
  instance-type:
    dev: t2.micro
schema:
  instance-type: list
`
	provider := NewProvider(createTempConfigFile(t, configContent))
	_, err := provider.Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "instance-type")
	assert.Contains(t, err.Error(), "list")
}

func TestProvider_ListEnvironments_ReturnsDeclaredOrder(t *testing.T) {
	configContent := `
project: web-platform
environments: [prod, dev, staging]
`
	provider := NewProvider(createTempConfigFile(t, configContent))

	environments, err := provider.ListEnvironments()
	require.NoError(t, err)
	assert.Equal(t, []string{"prod", "dev", "staging"}, environments)
}

func TestProvider_Validate_AcceptsConsistentConfiguration(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "templates"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "templates", "stack.yaml"), []byte("Resources: {}\n"), 0o644))

	configContent := `
project: web-platform
template: templates/stack.yaml
environments: [dev, prod]
parameters:
  instance-type:
    default: t2.micro
    prod: t2.xlarge
schema:
  instance-type: string
`
	configPath := filepath.Join(dir, "provar.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	provider := NewProvider(configPath)
	assert.NoError(t, provider.Validate())
}

func TestProvider_Validate_ReportsMissingTemplateFile(t *testing.T) {
	configContent := `
project: web-platform
template: templates/never-written.yaml
environments: [dev]
`
	provider := NewProvider(createTempConfigFile(t, configContent))
	err := provider.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "template file not found")
}

func TestProvider_Validate_ReportsUndeclaredEnvironmentReference(t *testing.T) {
	configContent := `
project: web-platform
environments: [dev]
parameters:
  instance-type:
    staging: t2.medium
`
	provider := NewProvider(createTempConfigFile(t, configContent))
	err := provider.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "staging")
}
