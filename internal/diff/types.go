/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package diff compares the resolved configurations of two environments and
// reports how their effective parameter values drift apart.
package diff

// ChangeType indicates the type of change detected
type ChangeType string

const (
	ChangeTypeAdd    ChangeType = "ADD"
	ChangeTypeModify ChangeType = "MODIFY"
	ChangeTypeRemove ChangeType = "REMOVE"
)

// Entry represents one parameter whose effective value differs between the
// two environments. FromValue and ToValue carry the rendered display form.
type Entry struct {
	Parameter string
	FromValue string
	ToValue   string
	Change    ChangeType
}

// Result contains the outcome of comparing two environments
type Result struct {
	FromEnvironment string
	ToEnvironment   string
	Entries         []Entry
}

// HasChanges returns true if any parameter differs between the environments
func (r *Result) HasChanges() bool {
	return len(r.Entries) > 0
}
