/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package report renders resolved configurations and validation results for
// terminal output.
package report

import (
	"fmt"
	"strings"

	"github.com/calderops/provar/internal/model"
	"github.com/calderops/provar/internal/schema"
)

// Renderer formats resolution and validation output
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a renderer with the given styles
func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{styles: styles}
}

// Configuration renders the effective configuration for one environment
func (r *Renderer) Configuration(cfg *model.ResolvedConfiguration) string {
	var b strings.Builder

	b.WriteString(r.styles.Header.Render(fmt.Sprintf("Configuration for environment %q", cfg.Environment())))
	b.WriteString("\n")

	names := cfg.Names()
	if len(names) == 0 {
		b.WriteString(r.styles.Subtle.Render("(no parameters declared)"))
		b.WriteString("\n")
		return b.String()
	}

	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}

	for _, name := range names {
		value, _ := cfg.Get(name)
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			r.styles.Key.Render(fmt.Sprintf("%-*s", width, name)),
			r.styles.Value.Render(value.Render())))
	}

	return b.String()
}

// ValidationSummary renders a validation result with every violation listed
func (r *Renderer) ValidationSummary(environment string, result schema.ValidationResult) string {
	var b strings.Builder

	if result.Valid() {
		b.WriteString(r.styles.Success.Render(
			fmt.Sprintf("✓ Configuration for environment %q is valid", environment)))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(r.styles.Error.Render(
		fmt.Sprintf("✗ Configuration for environment %q has %d violation(s)", environment, len(result.Violations))))
	b.WriteString("\n")
	for _, violation := range result.Violations {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			r.styles.Error.Render("✗"),
			violation.String()))
	}

	return b.String()
}

// Environments renders the registered environment list
func (r *Renderer) Environments(names []string) string {
	var b strings.Builder

	b.WriteString(r.styles.Header.Render("Environments"))
	b.WriteString("\n")
	for _, name := range names {
		b.WriteString(fmt.Sprintf("  %s\n", r.styles.Value.Render(name)))
	}

	return b.String()
}
