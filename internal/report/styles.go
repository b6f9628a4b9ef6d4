/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package report

import "charm.land/lipgloss/v2"

// Styles contains the styles for rendering resolution and validation output
type Styles struct {
	Header  lipgloss.Style
	Key     lipgloss.Style
	Value   lipgloss.Style
	Subtle  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	// Whether colours are enabled
	UseColour bool
}

// NewStyles creates the output styles, with or without colour
func NewStyles(useColour bool) *Styles {
	s := &Styles{UseColour: useColour}

	if useColour {
		s.Header = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")). // Bright Blue
			Bold(true)
		s.Key = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")) // Cyan
		s.Value = lipgloss.NewStyle()
		s.Subtle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")) // Grey
		s.Success = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")). // Green
			Bold(true)
		s.Warning = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")) // Yellow
		s.Error = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")). // Red
			Bold(true)
	} else {
		plain := lipgloss.NewStyle()
		s.Header = plain
		s.Key = plain
		s.Value = plain
		s.Subtle = plain
		s.Success = plain
		s.Warning = plain
		s.Error = plain
	}

	return s
}
