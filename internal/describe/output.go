/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package describe

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/calderops/provar/internal/report"
)

// FormatStackDescription formats deployed stack information for display
func FormatStackDescription(desc *StackDescription, styles *report.Styles) string {
	var output strings.Builder

	output.WriteString(styles.Header.Render(fmt.Sprintf("Stack: %s", desc.Name)))
	output.WriteString("\n")
	output.WriteString(fmt.Sprintf("Status: %s\n", renderStatus(desc.Status, styles)))
	output.WriteString(fmt.Sprintf("Region: %s\n", desc.Region))
	if !desc.CreatedTime.IsZero() {
		output.WriteString(fmt.Sprintf("Created: %s\n", formatTime(desc.CreatedTime)))
	}
	if desc.UpdatedTime != nil {
		output.WriteString(fmt.Sprintf("Updated: %s\n", formatTime(*desc.UpdatedTime)))
	}
	if desc.Description != "" {
		output.WriteString(fmt.Sprintf("Description: %s\n", desc.Description))
	}

	if len(desc.Parameters) > 0 {
		output.WriteString("\nParameters:\n")
		writeKeyValueMap(&output, desc.Parameters, styles)
	}

	if len(desc.Outputs) > 0 {
		output.WriteString("\nOutputs:\n")
		writeKeyValueMap(&output, desc.Outputs, styles)
	}

	if len(desc.Tags) > 0 {
		output.WriteString("\nTags:\n")
		writeKeyValueMap(&output, desc.Tags, styles)
	}

	return output.String()
}

// renderStatus colours a stack status by its outcome
func renderStatus(status string, styles *report.Styles) string {
	switch {
	case strings.HasSuffix(status, "_COMPLETE"):
		return styles.Success.Render(status)
	case strings.HasSuffix(status, "_FAILED"):
		return styles.Error.Render(status)
	default:
		return styles.Warning.Render(status)
	}
}

// formatTime formats time in a human-readable format
func formatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05 MST")
}

// writeKeyValueMap writes a sorted map as key-value pairs with indentation
func writeKeyValueMap(output *strings.Builder, m map[string]string, styles *report.Styles) {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(output, "  %s: %s\n", styles.Key.Render(key), styles.Value.Render(m[key]))
	}
}
