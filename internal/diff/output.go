/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package diff

import (
	"fmt"
	"strings"

	"github.com/calderops/provar/internal/report"
)

// Render returns a human-readable representation of the comparison
func (r *Result) Render(styles *report.Styles) string {
	var output strings.Builder

	header := fmt.Sprintf("Configuration drift: %s to %s", r.FromEnvironment, r.ToEnvironment)
	output.WriteString(styles.Header.Render(header))
	output.WriteString("\n")
	output.WriteString(styles.Subtle.Render(strings.Repeat("─", len(header))))
	output.WriteString("\n")

	if !r.HasChanges() {
		output.WriteString(styles.Success.Render("No differences"))
		output.WriteString("\n")
		output.WriteString(fmt.Sprintf("Environments %s and %s resolve to identical configurations.\n",
			r.FromEnvironment, r.ToEnvironment))
		return output.String()
	}

	for _, entry := range r.Entries {
		key := styles.Key.Render(entry.Parameter)
		switch entry.Change {
		case ChangeTypeAdd:
			symbol := styles.Success.Render("+")
			fmt.Fprintf(&output, "  %s %s: %s\n", symbol, key, styles.Value.Render(entry.ToValue))
		case ChangeTypeRemove:
			symbol := styles.Error.Render("-")
			fmt.Fprintf(&output, "  %s %s: %s\n", symbol, key, styles.Value.Render(entry.FromValue))
		case ChangeTypeModify:
			symbol := styles.Warning.Render("~")
			fmt.Fprintf(&output, "  %s %s: %s %s %s\n", symbol, key,
				styles.Value.Render(entry.FromValue),
				styles.Subtle.Render("=>"),
				styles.Value.Render(entry.ToValue))
		}
	}

	return output.String()
}
