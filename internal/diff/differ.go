/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package diff

import (
	"sort"

	"github.com/calderops/provar/internal/model"
)

// Compare reports every parameter whose effective value differs between the
// two resolved configurations. Entries are sorted by parameter name.
func Compare(from, to *model.ResolvedConfiguration) *Result {
	result := &Result{
		FromEnvironment: from.Environment(),
		ToEnvironment:   to.Environment(),
	}

	allNames := make(map[string]bool)
	for _, name := range from.Names() {
		allNames[name] = true
	}
	for _, name := range to.Names() {
		allNames[name] = true
	}

	for name := range allNames {
		fromValue, inFrom := from.Get(name)
		toValue, inTo := to.Get(name)

		entry := Entry{Parameter: name}

		switch {
		case !inFrom && inTo:
			entry.ToValue = toValue.Render()
			entry.Change = ChangeTypeAdd
		case inFrom && !inTo:
			entry.FromValue = fromValue.Render()
			entry.Change = ChangeTypeRemove
		case inFrom && inTo && !fromValue.Equal(toValue):
			entry.FromValue = fromValue.Render()
			entry.ToValue = toValue.Render()
			entry.Change = ChangeTypeModify
		default:
			continue
		}

		result.Entries = append(result.Entries, entry)
	}

	sort.Slice(result.Entries, func(i, j int) bool {
		return result.Entries[i].Parameter < result.Entries[j].Parameter
	})

	return result
}
