/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package provision

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// TemplateSource defines the interface for reading templates from URIs
type TemplateSource interface {
	Read(templateURI string) (string, error)
}

// FileTemplateSource reads templates from file:// URIs
type FileTemplateSource struct{}

// Read reads template content from a file:// URI
func (fts *FileTemplateSource) Read(templateURI string) (string, error) {
	filePath := strings.TrimPrefix(templateURI, "file://")

	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read template file %s: %w", filePath, err)
	}
	return string(content), nil
}

// TemplateRenderer defines the interface for rendering provisioning templates
type TemplateRenderer interface {
	Render(templateContent string, data map[string]interface{}) (string, error)
}

// SprigTemplateRenderer implements TemplateRenderer using Go's text/template
// with Sprig functions
type SprigTemplateRenderer struct{}

// NewSprigTemplateRenderer creates a new template renderer
func NewSprigTemplateRenderer() *SprigTemplateRenderer {
	return &SprigTemplateRenderer{}
}

// Render renders a provisioning template with the resolved parameter values.
// missingkey=error surfaces template references to parameters the resolution
// did not produce.
func (tr *SprigTemplateRenderer) Render(templateContent string, data map[string]interface{}) (string, error) {
	tmpl, err := template.New("provision").
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(templateContent)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
