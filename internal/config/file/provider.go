/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/calderops/provar/internal/config"
	"github.com/calderops/provar/internal/registry"
	"github.com/calderops/provar/internal/resolve"
	"github.com/calderops/provar/internal/schema"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file name used when none is given
const DefaultConfigFile = "provar.yaml"

// Provider implements config.ConfigProvider by reading from a YAML file
type Provider struct {
	filename  string
	rawConfig *Config
}

// NewProvider creates a new file-based ConfigProvider for the given filename
func NewProvider(filename string) *Provider {
	return &Provider{
		filename: filename,
	}
}

// NewDefaultProvider creates a ConfigProvider reading provar.yaml in the
// current directory
func NewDefaultProvider() *Provider {
	return NewProvider(DefaultConfigFile)
}

// Load parses the configuration file into registry, parameter map and schema
// instances
func (fp *Provider) Load(ctx context.Context) (*config.Config, error) {
	if err := fp.ensureLoaded(); err != nil {
		return nil, err
	}

	reg, err := registry.New(fp.rawConfig.Environments)
	if err != nil {
		return nil, fmt.Errorf("invalid environment list in '%s': %w", fp.filename, err)
	}

	parameters, err := fp.buildParameterMaps(reg)
	if err != nil {
		return nil, err
	}

	declaredSchema, err := fp.buildSchema()
	if err != nil {
		return nil, err
	}

	cfg := &config.Config{
		Project:    fp.rawConfig.Project,
		Region:     fp.rawConfig.Region,
		Template:   fp.templateURI(),
		Tags:       copyStringMap(fp.rawConfig.Tags),
		Registry:   reg,
		Parameters: parameters,
		Schema:     declaredSchema,
	}

	return cfg, nil
}

// ListEnvironments returns all declared environments in declaration order
func (fp *Provider) ListEnvironments() ([]string, error) {
	if err := fp.ensureLoaded(); err != nil {
		return nil, err
	}

	environments := make([]string, len(fp.rawConfig.Environments))
	copy(environments, fp.rawConfig.Environments)
	return environments, nil
}

// Validate checks the raw configuration for consistency and errors
func (fp *Provider) Validate() error {
	if err := fp.ensureLoaded(); err != nil {
		return err
	}

	reg, err := registry.New(fp.rawConfig.Environments)
	if err != nil {
		return fmt.Errorf("invalid environment list in '%s': %w", fp.filename, err)
	}

	// Every parameter entry must target a registered environment or the
	// reserved fallback key
	for _, name := range sortedParameterNames(fp.rawConfig.Parameters) {
		for key := range fp.rawConfig.Parameters[name] {
			if key == registry.FallbackName {
				continue
			}
			if !reg.IsValid(key) {
				return fmt.Errorf("parameter %q references undeclared environment %q", name, key)
			}
		}
	}

	if _, err := fp.buildSchema(); err != nil {
		return err
	}

	// Check that the template file exists (basic validation)
	if fp.rawConfig.Template != "" {
		templatePath := fp.resolveTemplatePath(fp.rawConfig.Template)
		if _, err := os.Stat(templatePath); err != nil && os.IsNotExist(err) {
			return fmt.Errorf("template file not found: %s", templatePath)
		}
	}

	return nil
}

// ensureLoaded loads the raw configuration from file if not already loaded
func (fp *Provider) ensureLoaded() error {
	if fp.rawConfig != nil {
		return nil // Already loaded
	}

	data, err := os.ReadFile(fp.filename)
	if err != nil {
		return fmt.Errorf("failed to read config file '%s': %w", fp.filename, err)
	}

	var rawConfig Config
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return fmt.Errorf("failed to parse YAML config file '%s': %w", fp.filename, err)
	}

	fp.rawConfig = &rawConfig
	return nil
}

// buildParameterMaps converts raw YAML parameter mappings, in name order, and
// rejects entries that target undeclared environments
func (fp *Provider) buildParameterMaps(reg *registry.Registry) ([]*resolve.ParameterMap, error) {
	names := sortedParameterNames(fp.rawConfig.Parameters)

	maps := make([]*resolve.ParameterMap, 0, len(names))
	for _, name := range names {
		raw := fp.rawConfig.Parameters[name]
		for key := range raw {
			if key != registry.FallbackName && !reg.IsValid(key) {
				return nil, fmt.Errorf("parameter %q references undeclared environment %q", name, key)
			}
		}
		maps = append(maps, raw.toParameterMap(name))
	}
	return maps, nil
}

// buildSchema parses the declared schema shapes
func (fp *Provider) buildSchema() (schema.Schema, error) {
	declared := make(schema.Schema, len(fp.rawConfig.Schema))
	for name, shapeName := range fp.rawConfig.Schema {
		shape, err := schema.ParseShape(shapeName)
		if err != nil {
			return nil, fmt.Errorf("schema entry %q: %w", name, err)
		}
		declared[name] = shape
	}
	return declared, nil
}

// templateURI returns the template as a file:// URI resolved relative to the
// config file directory, or empty when no template is declared
func (fp *Provider) templateURI() string {
	if fp.rawConfig.Template == "" {
		return ""
	}
	return "file://" + fp.resolveTemplatePath(fp.rawConfig.Template)
}

// resolveTemplatePath resolves template path relative to config file directory
func (fp *Provider) resolveTemplatePath(templatePath string) string {
	if filepath.IsAbs(templatePath) {
		return templatePath
	}

	configDir := filepath.Dir(fp.filename)
	return filepath.Join(configDir, templatePath)
}

func sortedParameterNames(parameters map[string]yamlParameterMap) []string {
	names := make([]string, 0, len(parameters))
	for name := range parameters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func copyStringMap(source map[string]string) map[string]string {
	if source == nil {
		return nil
	}

	copied := make(map[string]string, len(source))
	for k, v := range source {
		copied[k] = v
	}
	return copied
}
